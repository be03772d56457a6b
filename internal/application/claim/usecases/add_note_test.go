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

func TestAddNoteUseCase_Execute(t *testing.T) {
	t.Run("appends a comment note", func(t *testing.T) {
		stored := storedClaim(t, claimvo.StatusInProgress)
		var appended *claim.Note
		repo := &mockClaimRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*claim.Claim, error) {
				return stored, nil
			},
			AppendNoteFunc: func(ctx context.Context, claimID uint, note *claim.Note) error {
				assert.Equal(t, uint(1), claimID)
				appended = note
				return nil
			},
		}
		uc := NewAddNoteUseCase(repo, nopLogger{})

		result, err := uc.Execute(context.Background(), AddNoteCommand{
			ClaimID: 1,
			Body:    "customer sent more photos",
			Actor:   staffActor(),
		})

		require.NoError(t, err)
		require.NotNil(t, appended)
		assert.Equal(t, claim.NoteKindComment, appended.Kind())
		assert.Equal(t, "customer sent more photos", appended.Body())
		assert.Equal(t, staffActor().ID, appended.AuthorID())
		assert.Equal(t, uint(1), result.ClaimID)
	})

	t.Run("notes are allowed on terminal claims", func(t *testing.T) {
		stored := storedClaim(t, claimvo.StatusApproved)
		repo := &mockClaimRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*claim.Claim, error) {
				return stored, nil
			},
		}
		uc := NewAddNoteUseCase(repo, nopLogger{})

		_, err := uc.Execute(context.Background(), AddNoteCommand{
			ClaimID: 1,
			Body:    "post-approval follow-up",
			Actor:   staffActor(),
		})

		require.NoError(t, err)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		uc := NewAddNoteUseCase(&mockClaimRepository{}, nopLogger{})

		_, err := uc.Execute(context.Background(), AddNoteCommand{ClaimID: 1, Actor: staffActor()})

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("maps missing claim to not found", func(t *testing.T) {
		uc := NewAddNoteUseCase(&mockClaimRepository{}, nopLogger{})

		_, err := uc.Execute(context.Background(), AddNoteCommand{
			ClaimID: 99,
			Body:    "note",
			Actor:   staffActor(),
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("passes through append failures", func(t *testing.T) {
		stored := storedClaim(t, claimvo.StatusNew)
		appendErr := errors.New("write failed")
		repo := &mockClaimRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*claim.Claim, error) {
				return stored, nil
			},
			AppendNoteFunc: func(ctx context.Context, claimID uint, note *claim.Note) error {
				return appendErr
			},
		}
		uc := NewAddNoteUseCase(repo, nopLogger{})

		_, err := uc.Execute(context.Background(), AddNoteCommand{
			ClaimID: 1,
			Body:    "note",
			Actor:   staffActor(),
		})

		assert.ErrorIs(t, err, appendErr)
	})
}
