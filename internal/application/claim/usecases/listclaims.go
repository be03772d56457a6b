package usecases

import (
	"context"
	"time"

	"warrantly/internal/application/claim/dto"
	"warrantly/internal/domain/claim"
	claimvo "warrantly/internal/domain/claim/valueobjects"
	"warrantly/internal/shared/errors"
	"warrantly/internal/shared/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListClaimsQuery struct {
	Status     string
	CategoryID uint
	OrderID    string
	Since      time.Time
	Page       int
	PageSize   int
}

type ListClaimsResult struct {
	Claims   []*dto.ClaimDTO
	Total    int64
	Page     int
	PageSize int
}

type ListClaimsUseCase struct {
	claimRepo claim.Repository
	logger    logger.Interface
}

func NewListClaimsUseCase(claimRepo claim.Repository, logger logger.Interface) *ListClaimsUseCase {
	return &ListClaimsUseCase{
		claimRepo: claimRepo,
		logger:    logger,
	}
}

func (uc *ListClaimsUseCase) Execute(ctx context.Context, query ListClaimsQuery) (*ListClaimsResult, error) {
	filter := claim.ListFilter{
		CategoryID: query.CategoryID,
		OrderID:    query.OrderID,
		Since:      query.Since,
	}

	if query.Status != "" {
		status, err := claimvo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = status
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	claims, total, err := uc.claimRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list claims", "error", err)
		return nil, err
	}

	return &ListClaimsResult{
		Claims:   dto.ToClaimDTOs(claims),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
