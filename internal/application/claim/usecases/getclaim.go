package usecases

import (
	"context"
	stderrors "errors"

	"warrantly/internal/application/claim/dto"
	"warrantly/internal/domain/claim"
	"warrantly/internal/shared/errors"
	"warrantly/internal/shared/logger"
)

// GetClaimQuery looks a claim up by ID or by claim number; exactly one of the
// two should be set.
type GetClaimQuery struct {
	ClaimID     uint
	ClaimNumber string
}

type GetClaimUseCase struct {
	claimRepo claim.Repository
	logger    logger.Interface
}

func NewGetClaimUseCase(claimRepo claim.Repository, logger logger.Interface) *GetClaimUseCase {
	return &GetClaimUseCase{
		claimRepo: claimRepo,
		logger:    logger,
	}
}

func (uc *GetClaimUseCase) Execute(ctx context.Context, query GetClaimQuery) (*dto.ClaimDTO, error) {
	var (
		c   *claim.Claim
		err error
	)
	switch {
	case query.ClaimID != 0:
		c, err = uc.claimRepo.GetByID(ctx, query.ClaimID)
	case query.ClaimNumber != "":
		c, err = uc.claimRepo.GetByNumber(ctx, query.ClaimNumber)
	default:
		return nil, errors.NewValidationError("claim ID or claim number is required")
	}

	if err != nil {
		if stderrors.Is(err, claim.ErrClaimNotFound) {
			return nil, errors.NewNotFoundError("claim not found")
		}
		uc.logger.Errorw("failed to load claim", "claim_id", query.ClaimID, "claim_number", query.ClaimNumber, "error", err)
		return nil, err
	}

	return dto.ToClaimDTO(c), nil
}
