package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warrantly/internal/domain/claim"
	claimvo "warrantly/internal/domain/claim/valueobjects"
	apperrors "warrantly/internal/shared/errors"
)

func TestListClaimsUseCase_Execute(t *testing.T) {
	t.Run("maps filters and pagination", func(t *testing.T) {
		since := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		var gotFilter claim.ListFilter
		repo := &mockClaimRepository{
			ListFunc: func(ctx context.Context, filter claim.ListFilter) ([]*claim.Claim, int64, error) {
				gotFilter = filter
				return []*claim.Claim{storedClaim(t, claimvo.StatusInProgress)}, 41, nil
			},
		}
		uc := NewListClaimsUseCase(repo, nopLogger{})

		result, err := uc.Execute(context.Background(), ListClaimsQuery{
			Status:     "in_progress",
			CategoryID: 3,
			OrderID:    "TMR-O100",
			Since:      since,
			Page:       2,
			PageSize:   10,
		})

		require.NoError(t, err)
		assert.Equal(t, claimvo.StatusInProgress, gotFilter.Status)
		assert.Equal(t, uint(3), gotFilter.CategoryID)
		assert.Equal(t, "TMR-O100", gotFilter.OrderID)
		assert.Equal(t, since, gotFilter.Since)
		assert.Equal(t, 10, gotFilter.Limit)
		assert.Equal(t, 10, gotFilter.Offset)

		assert.Equal(t, int64(41), result.Total)
		assert.Equal(t, 2, result.Page)
		assert.Equal(t, 10, result.PageSize)
		require.Len(t, result.Claims, 1)
		assert.Equal(t, "CLAIM-100", result.Claims[0].ClaimNumber)
	})

	t.Run("applies pagination defaults", func(t *testing.T) {
		var gotFilter claim.ListFilter
		repo := &mockClaimRepository{
			ListFunc: func(ctx context.Context, filter claim.ListFilter) ([]*claim.Claim, int64, error) {
				gotFilter = filter
				return nil, 0, nil
			},
		}
		uc := NewListClaimsUseCase(repo, nopLogger{})

		result, err := uc.Execute(context.Background(), ListClaimsQuery{})

		require.NoError(t, err)
		assert.Equal(t, defaultPageSize, gotFilter.Limit)
		assert.Equal(t, 0, gotFilter.Offset)
		assert.Equal(t, 1, result.Page)
	})

	t.Run("caps oversized page size", func(t *testing.T) {
		var gotFilter claim.ListFilter
		repo := &mockClaimRepository{
			ListFunc: func(ctx context.Context, filter claim.ListFilter) ([]*claim.Claim, int64, error) {
				gotFilter = filter
				return nil, 0, nil
			},
		}
		uc := NewListClaimsUseCase(repo, nopLogger{})

		_, err := uc.Execute(context.Background(), ListClaimsQuery{PageSize: 5000})

		require.NoError(t, err)
		assert.Equal(t, maxPageSize, gotFilter.Limit)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		uc := NewListClaimsUseCase(&mockClaimRepository{}, nopLogger{})

		_, err := uc.Execute(context.Background(), ListClaimsQuery{Status: "escalated"})

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}
