package mappers

import (
	"time"

	"warrantly/internal/domain/category"
	"warrantly/internal/infrastructure/persistence/models"
)

type CategoryMapper interface {
	ToModel(c *category.Category) *models.CategoryModel
	ToDomain(model *models.CategoryModel) (*category.Category, error)
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToModel(c *category.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:           c.ID(),
		Name:         c.Name(),
		ApproverRole: c.ApproverRole(),
		SLADays:      c.SLADays(),
		Description:  c.Description(),
		CreatedAt:    c.CreatedAt().UnixMilli(),
		UpdatedAt:    c.UpdatedAt().UnixMilli(),
	}
}

func (m *CategoryMapperImpl) ToDomain(model *models.CategoryModel) (*category.Category, error) {
	return category.ReconstructCategory(
		model.ID,
		model.Name,
		model.ApproverRole,
		model.SLADays,
		model.Description,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
