package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"warrantly/internal/application/claim/services"
	"warrantly/internal/domain/category"
	"warrantly/internal/domain/claim"
	claimvo "warrantly/internal/domain/claim/valueobjects"
	"warrantly/internal/domain/notification"
	"warrantly/internal/domain/user"
	"warrantly/internal/shared/auth"
	"warrantly/internal/shared/errors"
	"warrantly/internal/shared/logger"
)

type ChangeStatusCommand struct {
	ClaimID   uint
	NewStatus string
	Note      string
	Actor     auth.ActorContext
}

type ChangeStatusResult struct {
	ClaimID       uint
	OldStatus     string
	NewStatus     string
	StatusChanged bool
	NoteAdded     bool
	UpdatedAt     time.Time
}

type ChangeStatusUseCase struct {
	claimRepo        claim.Repository
	categoryRepo     category.Repository
	userRepo         user.Repository
	approverResolver *services.ApproverResolver
	router           *notification.Router
	dispatcher       notification.Dispatcher
	txManager        TransactionManager
	logger           logger.Interface
}

func NewChangeStatusUseCase(
	claimRepo claim.Repository,
	categoryRepo category.Repository,
	userRepo user.Repository,
	approverResolver *services.ApproverResolver,
	router *notification.Router,
	dispatcher notification.Dispatcher,
	txManager TransactionManager,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		claimRepo:        claimRepo,
		categoryRepo:     categoryRepo,
		userRepo:         userRepo,
		approverResolver: approverResolver,
		router:           router,
		dispatcher:       dispatcher,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case",
		"claim_id", cmd.ClaimID,
		"new_status", cmd.NewStatus,
		"actor_id", cmd.Actor.ID,
	)

	if cmd.ClaimID == 0 {
		return nil, errors.NewValidationError("claim ID is required")
	}
	target, err := claimvo.NewStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	c, err := uc.claimRepo.GetByID(ctx, cmd.ClaimID)
	if err != nil {
		if stderrors.Is(err, claim.ErrClaimNotFound) {
			return nil, errors.NewNotFoundError("claim not found")
		}
		uc.logger.Errorw("failed to load claim", "claim_id", cmd.ClaimID, "error", err)
		return nil, err
	}

	oldStatus := c.Status()

	note, err := c.ChangeStatus(target, cmd.Note, cmd.Actor.ID, cmd.Actor.IsAdmin())
	if err != nil {
		switch {
		case stderrors.Is(err, claim.ErrSameStatus):
			// A repeated status with note text degrades into a plain
			// annotation instead of failing.
			if cmd.Note != "" {
				return uc.annotate(ctx, c, cmd)
			}
			return nil, errors.NewNoChangeError("claim already has this status and no note was provided")
		case stderrors.Is(err, claim.ErrAdminRequired):
			return nil, errors.NewForbiddenTransitionError("only administrators may resolve a claim")
		case stderrors.Is(err, claim.ErrTransitionNotAllowed):
			return nil, errors.NewForbiddenTransitionError(
				"status transition not allowed",
				oldStatus.String()+" -> "+target.String(),
			)
		default:
			return nil, err
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.claimRepo.Update(txCtx, c); err != nil {
			return err
		}
		return uc.claimRepo.AppendNote(txCtx, c.ID(), note)
	})
	if err != nil {
		if stderrors.Is(err, claim.ErrVersionConflict) {
			return nil, errors.NewConflictError("claim was modified concurrently, retry the request")
		}
		uc.logger.Errorw("failed to persist status change", "claim_id", c.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("claim status changed",
		"claim_id", c.ID(),
		"from", oldStatus.String(),
		"to", target.String(),
	)

	uc.notify(ctx, c, oldStatus, note)

	return &ChangeStatusResult{
		ClaimID:       c.ID(),
		OldStatus:     oldStatus.String(),
		NewStatus:     c.Status().String(),
		StatusChanged: true,
		NoteAdded:     true,
		UpdatedAt:     c.UpdatedAt(),
	}, nil
}

// annotate handles the same-status-with-note path: the note is recorded, the
// status and version stay untouched, and nobody is notified.
func (uc *ChangeStatusUseCase) annotate(ctx context.Context, c *claim.Claim, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	note, err := c.Annotate(cmd.Note, cmd.Actor.ID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.claimRepo.AppendNote(ctx, c.ID(), note); err != nil {
		uc.logger.Errorw("failed to append note", "claim_id", c.ID(), "error", err)
		return nil, err
	}

	return &ChangeStatusResult{
		ClaimID:       c.ID(),
		OldStatus:     c.Status().String(),
		NewStatus:     c.Status().String(),
		StatusChanged: false,
		NoteAdded:     true,
		UpdatedAt:     c.UpdatedAt(),
	}, nil
}

func (uc *ChangeStatusUseCase) notify(ctx context.Context, c *claim.Claim, oldStatus claimvo.Status, note *claim.Note) {
	event := notification.ClaimEvent{
		ClaimNumber: c.ClaimNumber().String(),
		OrderID:     c.OrderID(),
		FromStatus:  oldStatus.String(),
		ToStatus:    c.Status().String(),
		NoteBody:    note.Body(),
	}

	for _, categoryID := range c.CategoryIDs() {
		cat, err := uc.categoryRepo.GetByID(ctx, categoryID)
		if err != nil {
			uc.logger.Warnw("failed to load category for notification", "category_id", categoryID, "error", err)
			continue
		}
		emails, err := uc.approverResolver.ResolveEmails(ctx, cat)
		if err != nil {
			uc.logger.Warnw("failed to resolve approvers for notification", "category_id", cat.ID(), "error", err)
			continue
		}
		event.Approvers = append(event.Approvers, emails...)
	}

	if c.CreatedBy() != 0 {
		creator, err := uc.userRepo.GetByID(ctx, c.CreatedBy())
		if err != nil {
			uc.logger.Warnw("failed to load staff creator for notification", "user_id", c.CreatedBy(), "error", err)
		} else {
			event.StaffCreatorEmail = creator.Email()
		}
	}

	intents := uc.router.RouteStatusChanged(event)
	if len(intents) == 0 {
		return
	}
	if err := uc.dispatcher.Dispatch(ctx, intents); err != nil {
		uc.logger.Errorw("failed to dispatch status change notifications",
			"claim_number", c.ClaimNumber().String(),
			"error", err,
		)
	}
}
