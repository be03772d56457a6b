package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"warrantly/internal/domain/warranty"
	"warrantly/internal/infrastructure/persistence/mappers"
	"warrantly/internal/infrastructure/persistence/models"
	"warrantly/internal/shared/db"
)

type WarrantyRuleRepository struct {
	db     *gorm.DB
	mapper mappers.WarrantyRuleMapper
}

func NewWarrantyRuleRepository(db *gorm.DB) *WarrantyRuleRepository {
	return &WarrantyRuleRepository{
		db:     db,
		mapper: mappers.NewWarrantyRuleMapper(),
	}
}

func (r *WarrantyRuleRepository) Save(ctx context.Context, rule *warranty.Rule) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(rule)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save warranty rule: %w", err)
	}

	if rule.ID() == 0 {
		return rule.SetID(model.ID)
	}
	return nil
}

func (r *WarrantyRuleRepository) FindByProductType(ctx context.Context, productType string) (*warranty.Rule, error) {
	var model models.WarrantyRuleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("product_type = ?", productType).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, warranty.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to find warranty rule: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WarrantyRuleRepository) List(ctx context.Context) ([]*warranty.Rule, error) {
	var rows []models.WarrantyRuleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("product_type ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list warranty rules: %w", err)
	}

	rules := make([]*warranty.Rule, 0, len(rows))
	for i := range rows {
		rule, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
