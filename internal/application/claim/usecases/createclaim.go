package usecases

import (
	"context"
	"fmt"
	"time"

	"warrantly/internal/application/claim/dto"
	"warrantly/internal/application/claim/services"
	"warrantly/internal/domain/category"
	"warrantly/internal/domain/claim"
	claimvo "warrantly/internal/domain/claim/valueobjects"
	"warrantly/internal/domain/notification"
	"warrantly/internal/domain/user"
	"warrantly/internal/domain/warranty"
	"warrantly/internal/shared/errors"
	"warrantly/internal/shared/logger"
)

type CreateClaimItemInput struct {
	SKU         string
	ProductName string
	CategoryID  uint
	Quantity    int
	Issue       string
}

type CreateClaimMediaInput struct {
	Type      string
	URL       string
	Filename  string
	SizeBytes int64
	// ItemSKU scopes the attachment to one claimed item; empty means the
	// whole claim.
	ItemSKU string
}

type CreateClaimCommand struct {
	OrderID       string
	OrderDate     time.Time
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	DeliveryDate  time.Time
	Items         []CreateClaimItemInput
	Media         []CreateClaimMediaInput
	// CreatedBy is the staff user filing the claim, zero when the claim
	// arrives through the customer channel.
	CreatedBy uint
}

type CreateClaimResult struct {
	ClaimID     uint
	ClaimNumber string
	Status      string
	Warranty    []dto.WarrantyDTO
	CreatedAt   time.Time
}

type CreateClaimUseCase struct {
	claimRepo        claim.Repository
	categoryRepo     category.Repository
	userRepo         user.Repository
	warrantyResolver *warranty.Resolver
	approverResolver *services.ApproverResolver
	router           *notification.Router
	dispatcher       notification.Dispatcher
	txManager        TransactionManager
	logger           logger.Interface
}

func NewCreateClaimUseCase(
	claimRepo claim.Repository,
	categoryRepo category.Repository,
	userRepo user.Repository,
	warrantyResolver *warranty.Resolver,
	approverResolver *services.ApproverResolver,
	router *notification.Router,
	dispatcher notification.Dispatcher,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateClaimUseCase {
	return &CreateClaimUseCase{
		claimRepo:        claimRepo,
		categoryRepo:     categoryRepo,
		userRepo:         userRepo,
		warrantyResolver: warrantyResolver,
		approverResolver: approverResolver,
		router:           router,
		dispatcher:       dispatcher,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *CreateClaimUseCase) Execute(ctx context.Context, cmd CreateClaimCommand) (*CreateClaimResult, error) {
	uc.logger.Infow("executing create claim use case", "order_id", cmd.OrderID, "created_by", cmd.CreatedBy)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create claim command", "error", err)
		return nil, err
	}

	categories, err := uc.loadCategories(ctx, cmd.Items)
	if err != nil {
		return nil, err
	}

	newClaim, err := claim.NewClaim(cmd.OrderID, cmd.CustomerName, cmd.CustomerEmail, cmd.CustomerPhone, cmd.DeliveryDate, cmd.CreatedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	warranties := make([]dto.WarrantyDTO, 0, len(cmd.Items))
	for _, input := range cmd.Items {
		det, err := uc.warrantyResolver.Resolve(ctx, input.SKU, cmd.OrderDate)
		if err != nil {
			uc.logger.Errorw("warranty determination failed", "sku", input.SKU, "error", err)
			return nil, err
		}
		warranties = append(warranties, dto.WarrantyDTO{
			SKU:            input.SKU,
			ProductType:    det.ProductType,
			DurationMonths: det.DurationMonths,
			ExpiryDate:     det.ExpiryDate,
			IsValid:        det.IsValid,
		})

		item, err := claim.NewItem(input.SKU, input.ProductName, det.ProductType, input.Issue, input.CategoryID, input.Quantity)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		newClaim.AddItem(item)
	}

	for _, input := range cmd.Media {
		mediaType, err := claimvo.NewMediaType(input.Type)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		media, err := claim.NewMedia(mediaType, input.URL, input.Filename, input.SizeBytes)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if input.ItemSKU != "" {
			media.ScopeToSKU(input.ItemSKU)
		}
		newClaim.AddMedia(media)
	}

	note, err := claim.NewNote("Claim created", cmd.CreatedBy)
	if err != nil {
		return nil, errors.NewInternalError("failed to create initial note", err.Error())
	}
	newClaim.AddNote(note)

	// Approver lookup happens before the transaction so a directory failure
	// never leaves a half-written claim behind.
	approverEmails, categoryNames, err := uc.resolveRecipients(ctx, categories)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, item := range newClaim.Items() {
			exists, err := uc.claimRepo.ExistsByOrderAndSKU(txCtx, cmd.OrderID, item.SKU())
			if err != nil {
				return errors.NewInternalError("failed to check for duplicate claim", err.Error())
			}
			if exists {
				return errors.NewDuplicateClaimError(
					fmt.Sprintf("a claim for order %s and sku %s already exists", cmd.OrderID, item.SKU()),
				)
			}
		}

		if err := uc.claimRepo.Save(txCtx, newClaim); err != nil {
			// A concurrent create can slip past the existence check; the
			// unique index is the authority.
			if errors.IsDuplicateKeyError(err) {
				return errors.NewDuplicateClaimError("a claim for this order and sku already exists")
			}
			return err
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to save claim", "order_id", cmd.OrderID, "error", err)
		return nil, err
	}

	uc.logger.Infow("claim created successfully",
		"claim_id", newClaim.ID(),
		"claim_number", newClaim.ClaimNumber().String(),
	)

	uc.notify(ctx, newClaim, categoryNames, approverEmails)

	return &CreateClaimResult{
		ClaimID:     newClaim.ID(),
		ClaimNumber: newClaim.ClaimNumber().String(),
		Status:      newClaim.Status().String(),
		Warranty:    warranties,
		CreatedAt:   newClaim.CreatedAt(),
	}, nil
}

// loadCategories fetches each distinct category referenced by the items, in
// first-seen order. An unknown category fails the whole command.
func (uc *CreateClaimUseCase) loadCategories(ctx context.Context, items []CreateClaimItemInput) ([]*category.Category, error) {
	seen := make(map[uint]bool, len(items))
	var categories []*category.Category
	for _, item := range items {
		if item.CategoryID == 0 || seen[item.CategoryID] {
			continue
		}
		seen[item.CategoryID] = true
		cat, err := uc.categoryRepo.GetByID(ctx, item.CategoryID)
		if err != nil {
			uc.logger.Errorw("failed to load category", "category_id", item.CategoryID, "error", err)
			return nil, errors.NewNotFoundError(fmt.Sprintf("category %d not found", item.CategoryID))
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

// resolveRecipients unions approver emails across the claim's categories. The
// router deduplicates addresses later; names stay in category order.
func (uc *CreateClaimUseCase) resolveRecipients(ctx context.Context, categories []*category.Category) ([]string, []string, error) {
	var emails, names []string
	for _, cat := range categories {
		resolved, err := uc.approverResolver.ResolveEmails(ctx, cat)
		if err != nil {
			uc.logger.Errorw("failed to resolve approvers", "category_id", cat.ID(), "error", err)
			return nil, nil, errors.NewInternalError("failed to resolve approvers", err.Error())
		}
		emails = append(emails, resolved...)
		names = append(names, cat.Name())
	}
	return emails, names, nil
}

// notify routes and dispatches creation notifications. Delivery problems are
// logged and swallowed; the claim is already committed.
func (uc *CreateClaimUseCase) notify(ctx context.Context, c *claim.Claim, categoryNames, approverEmails []string) {
	event := notification.ClaimEvent{
		ClaimNumber:   c.ClaimNumber().String(),
		OrderID:       c.OrderID(),
		CustomerName:  c.CustomerName(),
		CustomerEmail: c.CustomerEmail(),
		CategoryNames: categoryNames,
		Approvers:     approverEmails,
	}
	if c.CreatedBy() != 0 {
		creator, err := uc.userRepo.GetByID(ctx, c.CreatedBy())
		if err != nil {
			uc.logger.Warnw("failed to load staff creator for notification", "user_id", c.CreatedBy(), "error", err)
		} else {
			event.StaffCreatorEmail = creator.Email()
		}
	}

	intents := uc.router.RouteClaimCreated(event)
	if len(intents) == 0 {
		return
	}
	if err := uc.dispatcher.Dispatch(ctx, intents); err != nil {
		uc.logger.Errorw("failed to dispatch claim created notifications",
			"claim_number", c.ClaimNumber().String(),
			"error", err,
		)
	}
}

func (uc *CreateClaimUseCase) validateCommand(cmd CreateClaimCommand) error {
	var fields []string

	if cmd.OrderID == "" {
		fields = append(fields, "order_id is required")
	}
	if cmd.OrderDate.IsZero() {
		fields = append(fields, "order_date is required")
	}
	if cmd.CustomerName == "" {
		fields = append(fields, "customer_name is required")
	}
	if len(cmd.Items) == 0 {
		fields = append(fields, "at least one item is required")
	}

	seen := make(map[string]bool, len(cmd.Items))
	for i, item := range cmd.Items {
		if item.SKU == "" {
			fields = append(fields, fmt.Sprintf("items[%d].sku is required", i))
			continue
		}
		if item.CategoryID == 0 {
			fields = append(fields, fmt.Sprintf("items[%d].category_id is required", i))
		}
		if item.Quantity <= 0 {
			fields = append(fields, fmt.Sprintf("items[%d].quantity must be positive", i))
		}
		if item.Issue == "" {
			fields = append(fields, fmt.Sprintf("items[%d].issue is required", i))
		}
		if seen[item.SKU] {
			fields = append(fields, fmt.Sprintf("items[%d].sku %s appears more than once", i, item.SKU))
		}
		seen[item.SKU] = true
	}

	for i, media := range cmd.Media {
		mediaType, err := claimvo.NewMediaType(media.Type)
		if err != nil {
			fields = append(fields, fmt.Sprintf("media[%d].type %s is not supported", i, media.Type))
			continue
		}
		if media.URL == "" {
			fields = append(fields, fmt.Sprintf("media[%d].url is required", i))
		}
		if media.SizeBytes <= 0 {
			fields = append(fields, fmt.Sprintf("media[%d].size_bytes must be positive", i))
		} else if media.SizeBytes > mediaType.MaxBytes() {
			fields = append(fields, fmt.Sprintf("media[%d] exceeds the %d byte limit for %s", i, mediaType.MaxBytes(), mediaType))
		}
		if media.ItemSKU != "" && !seen[media.ItemSKU] {
			fields = append(fields, fmt.Sprintf("media[%d].item_sku %s does not match any claimed item", i, media.ItemSKU))
		}
	}

	// Every failing precondition is reported in one pass.
	if len(fields) > 0 {
		return errors.NewValidationErrors(fields)
	}
	return nil
}
