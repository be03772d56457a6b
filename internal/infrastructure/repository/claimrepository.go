package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"warrantly/internal/domain/claim"
	"warrantly/internal/infrastructure/persistence/mappers"
	"warrantly/internal/infrastructure/persistence/models"
	"warrantly/internal/shared/db"
)

type ClaimRepository struct {
	db     *gorm.DB
	mapper mappers.ClaimMapper
}

func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{
		db:     db,
		mapper: mappers.NewClaimMapper(),
	}
}

// Save persists the claim with all child rows. Callers run it inside a
// transaction; the claim row, items, notes and media land or roll back as one.
func (r *ClaimRepository) Save(ctx context.Context, c *claim.Claim) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(c)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save claim: %w", err)
	}
	if err := c.SetID(model.ID); err != nil {
		return err
	}

	for _, item := range c.Items() {
		itemModel := r.mapper.ItemToModel(item, c.OrderID())
		if err := tx.Create(itemModel).Error; err != nil {
			return fmt.Errorf("failed to save claim item: %w", err)
		}
		if err := item.SetID(itemModel.ID); err != nil {
			return err
		}
	}

	for _, note := range c.Notes() {
		noteModel := r.mapper.NoteToModel(note)
		if err := tx.Create(noteModel).Error; err != nil {
			return fmt.Errorf("failed to save claim note: %w", err)
		}
		if err := note.SetID(noteModel.ID); err != nil {
			return err
		}
	}

	for _, media := range c.Media() {
		// Item-scoped attachments reference their item by SKU until the
		// item rows exist; bind the persisted ID now.
		if sku := media.ItemSKU(); sku != "" {
			for _, item := range c.Items() {
				if item.SKU() == sku {
					media.AttachToItem(item.ID())
					break
				}
			}
		}
		mediaModel := r.mapper.MediaToModel(media)
		if err := tx.Create(mediaModel).Error; err != nil {
			return fmt.Errorf("failed to save claim media: %w", err)
		}
		if err := media.SetID(mediaModel.ID); err != nil {
			return err
		}
	}

	return nil
}

// Update writes the claim row guarded by an optimistic version check. The
// WHERE clause matches the pre-increment version; zero affected rows means
// another writer moved the claim first.
func (r *ClaimRepository) Update(ctx context.Context, c *claim.Claim) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ClaimModel{}).
		Where("id = ? AND version = ?", c.ID(), c.Version()-1).
		Updates(map[string]interface{}{
			"status":  c.Status().String(),
			"version": c.Version(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update claim: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return claim.ErrVersionConflict
	}

	return nil
}

func (r *ClaimRepository) GetByID(ctx context.Context, id uint) (*claim.Claim, error) {
	var model models.ClaimModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claim.ErrClaimNotFound
		}
		return nil, fmt.Errorf("failed to find claim: %w", err)
	}

	return r.loadAggregate(tx, &model)
}

func (r *ClaimRepository) GetByNumber(ctx context.Context, number string) (*claim.Claim, error) {
	var model models.ClaimModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("claim_number = ?", number).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claim.ErrClaimNotFound
		}
		return nil, fmt.Errorf("failed to find claim by number: %w", err)
	}

	return r.loadAggregate(tx, &model)
}

func (r *ClaimRepository) ExistsByOrderAndSKU(ctx context.Context, orderID, sku string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.
		Model(&models.ClaimItemModel{}).
		Where("order_id = ? AND sku = ?", orderID, sku).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check claim existence: %w", err)
	}

	return count > 0, nil
}

func (r *ClaimRepository) AppendNote(ctx context.Context, claimID uint, note *claim.Note) error {
	tx := db.GetTxFromContext(ctx, r.db)

	note.AttachTo(claimID)
	model := r.mapper.NoteToModel(note)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append claim note: %w", err)
	}

	return note.SetID(model.ID)
}

func (r *ClaimRepository) List(ctx context.Context, filter claim.ListFilter) ([]*claim.Claim, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.ClaimModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.CategoryID != 0 {
		// Category lives on the item rows; a claim matches when any of
		// its items is in the category.
		itemClaims := tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.ClaimItemModel{}).
			Select("claim_id").
			Where("category_id = ?", filter.CategoryID)
		query = query.Where("id IN (?)", itemClaims)
	}
	if filter.OrderID != "" {
		query = query.Where("order_id = ?", filter.OrderID)
	}
	if !filter.Since.IsZero() {
		query = query.Where("created_at >= ?", filter.Since.UnixMilli())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count claims: %w", err)
	}

	var rows []models.ClaimModel
	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list claims: %w", err)
	}

	// List returns claim rows without children; detail views load the full
	// aggregate through GetByID.
	claims := make([]*claim.Claim, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		claims = append(claims, c)
	}

	return claims, total, nil
}

func (r *ClaimRepository) loadAggregate(tx *gorm.DB, model *models.ClaimModel) (*claim.Claim, error) {
	c, err := r.mapper.ToDomain(model)
	if err != nil {
		return nil, err
	}

	var itemRows []models.ClaimItemModel
	if err := tx.Where("claim_id = ?", model.ID).Order("id ASC").Find(&itemRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load claim items: %w", err)
	}
	for i := range itemRows {
		item, err := r.mapper.ItemToDomain(&itemRows[i])
		if err != nil {
			return nil, err
		}
		c.AddItem(item)
	}

	var noteRows []models.ClaimNoteModel
	if err := tx.Where("claim_id = ?", model.ID).Order("created_at ASC, id ASC").Find(&noteRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load claim notes: %w", err)
	}
	for i := range noteRows {
		note, err := r.mapper.NoteToDomain(&noteRows[i])
		if err != nil {
			return nil, err
		}
		c.AddNote(note)
	}

	var mediaRows []models.ClaimMediaModel
	if err := tx.Where("claim_id = ?", model.ID).Order("id ASC").Find(&mediaRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load claim media: %w", err)
	}
	for i := range mediaRows {
		media, err := r.mapper.MediaToDomain(&mediaRows[i])
		if err != nil {
			return nil, err
		}
		c.AddMedia(media)
	}

	return c, nil
}
