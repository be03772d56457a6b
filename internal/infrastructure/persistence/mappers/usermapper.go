package mappers

import (
	"fmt"
	"time"

	"warrantly/internal/domain/user"
	vo "warrantly/internal/domain/user/valueobjects"
	"warrantly/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		DisplayName:  u.DisplayName(),
		Email:        u.Email(),
		ApproverRole: u.ApproverRole(),
		IsAdmin:      u.IsAdmin(),
		Status:       u.Status().String(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid user status in storage: %w", err)
	}

	return user.ReconstructUser(
		model.ID,
		model.DisplayName,
		model.Email,
		model.ApproverRole,
		model.IsAdmin,
		status,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
