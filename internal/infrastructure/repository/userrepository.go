package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"warrantly/internal/domain/user"
	uservo "warrantly/internal/domain/user/valueobjects"
	"warrantly/internal/infrastructure/persistence/mappers"
	"warrantly/internal/infrastructure/persistence/models"
	"warrantly/internal/shared/db"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d not found", id)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FindActiveByApproverRole matches the role label exactly and case-sensitively.
// The BINARY modifier keeps MySQL's default collation from matching
// case-insensitively.
func (r *UserRepository) FindActiveByApproverRole(ctx context.Context, role string) ([]*user.User, error) {
	var rows []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("BINARY approver_role = ?", role).
		Where("status = ?", uservo.StatusActive.String()).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find users by approver role: %w", err)
	}

	users := make([]*user.User, 0, len(rows))
	for i := range rows {
		u, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}
