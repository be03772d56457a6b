package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"warrantly/internal/domain/category"
	"warrantly/internal/infrastructure/persistence/mappers"
	"warrantly/internal/infrastructure/persistence/models"
	"warrantly/internal/shared/db"
)

type CategoryRepository struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		mapper: mappers.NewCategoryMapper(),
	}
}

func (r *CategoryRepository) Save(ctx context.Context, c *category.Category) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(c)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}

	if c.ID() == 0 {
		return c.SetID(model.ID)
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %d not found", id)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	var rows []models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*category.Category, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, nil
}
