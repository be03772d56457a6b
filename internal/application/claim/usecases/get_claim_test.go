package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warrantly/internal/domain/claim"
	claimvo "warrantly/internal/domain/claim/valueobjects"
	apperrors "warrantly/internal/shared/errors"
)

func TestGetClaimUseCase_Execute(t *testing.T) {
	t.Run("finds claim by ID", func(t *testing.T) {
		stored := storedClaim(t, claimvo.StatusNew)
		repo := &mockClaimRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*claim.Claim, error) {
				assert.Equal(t, uint(1), id)
				return stored, nil
			},
		}
		uc := NewGetClaimUseCase(repo, nopLogger{})

		result, err := uc.Execute(context.Background(), GetClaimQuery{ClaimID: 1})

		require.NoError(t, err)
		assert.Equal(t, uint(1), result.ID)
		assert.Equal(t, "CLAIM-100", result.ClaimNumber)
		assert.Equal(t, "new", result.Status)
	})

	t.Run("finds claim by number", func(t *testing.T) {
		stored := storedClaim(t, claimvo.StatusInProgress)
		repo := &mockClaimRepository{
			GetByNumberFunc: func(ctx context.Context, number string) (*claim.Claim, error) {
				assert.Equal(t, "CLAIM-100", number)
				return stored, nil
			},
		}
		uc := NewGetClaimUseCase(repo, nopLogger{})

		result, err := uc.Execute(context.Background(), GetClaimQuery{ClaimNumber: "CLAIM-100"})

		require.NoError(t, err)
		assert.Equal(t, "in_progress", result.Status)
	})

	t.Run("requires an identifier", func(t *testing.T) {
		uc := NewGetClaimUseCase(&mockClaimRepository{}, nopLogger{})

		_, err := uc.Execute(context.Background(), GetClaimQuery{})

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("maps missing claim to not found", func(t *testing.T) {
		repo := &mockClaimRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*claim.Claim, error) {
				return nil, claim.ErrClaimNotFound
			},
		}
		uc := NewGetClaimUseCase(repo, nopLogger{})

		_, err := uc.Execute(context.Background(), GetClaimQuery{ClaimID: 99})

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("passes through storage failures", func(t *testing.T) {
		storageErr := errors.New("connection lost")
		repo := &mockClaimRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*claim.Claim, error) {
				return nil, storageErr
			},
		}
		uc := NewGetClaimUseCase(repo, nopLogger{})

		_, err := uc.Execute(context.Background(), GetClaimQuery{ClaimID: 1})

		assert.ErrorIs(t, err, storageErr)
	})
}
