package mappers

import (
	"fmt"
	"time"

	"warrantly/internal/domain/claim"
	vo "warrantly/internal/domain/claim/valueobjects"
	"warrantly/internal/infrastructure/persistence/models"
)

// ClaimMapper handles the conversion between claim domain entities and
// persistence models.
type ClaimMapper interface {
	ToModel(c *claim.Claim) *models.ClaimModel
	ToDomain(model *models.ClaimModel) (*claim.Claim, error)
	ItemToModel(item *claim.Item, orderID string) *models.ClaimItemModel
	ItemToDomain(model *models.ClaimItemModel) (*claim.Item, error)
	NoteToModel(note *claim.Note) *models.ClaimNoteModel
	NoteToDomain(model *models.ClaimNoteModel) (*claim.Note, error)
	MediaToModel(media *claim.Media) *models.ClaimMediaModel
	MediaToDomain(model *models.ClaimMediaModel) (*claim.Media, error)
}

type ClaimMapperImpl struct{}

func NewClaimMapper() ClaimMapper {
	return &ClaimMapperImpl{}
}

func (m *ClaimMapperImpl) ToModel(c *claim.Claim) *models.ClaimModel {
	var deliveryDate int64
	if !c.DeliveryDate().IsZero() {
		deliveryDate = c.DeliveryDate().UnixMilli()
	}
	return &models.ClaimModel{
		ID:            c.ID(),
		ClaimNumber:   c.ClaimNumber().String(),
		OrderID:       c.OrderID(),
		CustomerName:  c.CustomerName(),
		CustomerEmail: c.CustomerEmail(),
		CustomerPhone: c.CustomerPhone(),
		DeliveryDate:  deliveryDate,
		Status:        c.Status().String(),
		CreatedBy:     c.CreatedBy(),
		AssignedTo:    c.AssignedTo(),
		Version:       c.Version(),
		CreatedAt:     c.CreatedAt().UnixMilli(),
		UpdatedAt:     c.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts a claim row to a domain entity. Child rows must be loaded
// separately by the repository.
func (m *ClaimMapperImpl) ToDomain(model *models.ClaimModel) (*claim.Claim, error) {
	number, err := vo.ReconstructClaimNumber(model.ClaimNumber)
	if err != nil {
		return nil, fmt.Errorf("invalid claim number in storage: %w", err)
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid claim status in storage: %w", err)
	}

	var deliveryDate time.Time
	if model.DeliveryDate != 0 {
		deliveryDate = time.UnixMilli(model.DeliveryDate)
	}

	return claim.ReconstructClaim(
		model.ID,
		number,
		model.OrderID,
		model.CustomerName,
		model.CustomerEmail,
		model.CustomerPhone,
		deliveryDate,
		status,
		model.CreatedBy,
		model.AssignedTo,
		model.Version,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

// ItemToModel denormalizes the order ID onto the item row so the
// (order_id, sku) unique index can live there.
func (m *ClaimMapperImpl) ItemToModel(item *claim.Item, orderID string) *models.ClaimItemModel {
	return &models.ClaimItemModel{
		ID:          item.ID(),
		ClaimID:     item.ClaimID(),
		OrderID:     orderID,
		SKU:         item.SKU(),
		ProductName: item.ProductName(),
		ProductType: item.ProductType(),
		CategoryID:  item.CategoryID(),
		Quantity:    item.Quantity(),
		Issue:       item.Issue(),
	}
}

func (m *ClaimMapperImpl) ItemToDomain(model *models.ClaimItemModel) (*claim.Item, error) {
	return claim.ReconstructItem(
		model.ID,
		model.ClaimID,
		model.SKU,
		model.ProductName,
		model.ProductType,
		model.Issue,
		model.CategoryID,
		model.Quantity,
	)
}

func (m *ClaimMapperImpl) NoteToModel(note *claim.Note) *models.ClaimNoteModel {
	model := &models.ClaimNoteModel{
		ID:        note.ID(),
		ClaimID:   note.ClaimID(),
		Kind:      string(note.Kind()),
		Body:      note.Body(),
		AuthorID:  note.AuthorID(),
		CreatedAt: note.CreatedAt().UnixMilli(),
	}
	if note.StatusChanged() {
		model.OldStatus = note.OldStatus().String()
		model.NewStatus = note.NewStatus().String()
	}
	return model
}

func (m *ClaimMapperImpl) NoteToDomain(model *models.ClaimNoteModel) (*claim.Note, error) {
	return claim.ReconstructNote(
		model.ID,
		model.ClaimID,
		claim.NoteKind(model.Kind),
		model.Body,
		vo.Status(model.OldStatus),
		vo.Status(model.NewStatus),
		model.AuthorID,
		time.UnixMilli(model.CreatedAt),
	)
}

func (m *ClaimMapperImpl) MediaToModel(media *claim.Media) *models.ClaimMediaModel {
	return &models.ClaimMediaModel{
		ID:               media.ID(),
		ClaimID:          media.ClaimID(),
		ClaimItemID:      media.ClaimItemID(),
		MediaType:        media.Type().String(),
		URL:              media.URL(),
		OriginalFilename: media.OriginalFilename(),
		SizeBytes:        media.SizeBytes(),
	}
}

func (m *ClaimMapperImpl) MediaToDomain(model *models.ClaimMediaModel) (*claim.Media, error) {
	mediaType, err := vo.NewMediaType(model.MediaType)
	if err != nil {
		return nil, fmt.Errorf("invalid media type in storage: %w", err)
	}
	return claim.ReconstructMedia(
		model.ID,
		model.ClaimID,
		model.ClaimItemID,
		mediaType,
		model.URL,
		model.OriginalFilename,
		model.SizeBytes,
	)
}
