package mappers

import (
	"time"

	"warrantly/internal/domain/warranty"
	"warrantly/internal/infrastructure/persistence/models"
)

type WarrantyRuleMapper interface {
	ToModel(r *warranty.Rule) *models.WarrantyRuleModel
	ToDomain(model *models.WarrantyRuleModel) (*warranty.Rule, error)
}

type WarrantyRuleMapperImpl struct{}

func NewWarrantyRuleMapper() WarrantyRuleMapper {
	return &WarrantyRuleMapperImpl{}
}

func (m *WarrantyRuleMapperImpl) ToModel(r *warranty.Rule) *models.WarrantyRuleModel {
	return &models.WarrantyRuleModel{
		ID:             r.ID(),
		ProductType:    r.ProductType(),
		DurationMonths: r.DurationMonths(),
		Coverage:       r.Coverage(),
		Exclusions:     r.Exclusions(),
		CreatedAt:      r.CreatedAt().UnixMilli(),
		UpdatedAt:      r.UpdatedAt().UnixMilli(),
	}
}

func (m *WarrantyRuleMapperImpl) ToDomain(model *models.WarrantyRuleModel) (*warranty.Rule, error) {
	return warranty.ReconstructRule(
		model.ID,
		model.ProductType,
		model.DurationMonths,
		model.Coverage,
		model.Exclusions,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
