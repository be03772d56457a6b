package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"warrantly/internal/domain/claim"
	"warrantly/internal/shared/auth"
	"warrantly/internal/shared/errors"
	"warrantly/internal/shared/logger"
)

type AddNoteCommand struct {
	ClaimID uint
	Body    string
	Actor   auth.ActorContext
}

type AddNoteResult struct {
	ClaimID   uint
	NoteID    uint
	CreatedAt time.Time
}

type AddNoteUseCase struct {
	claimRepo claim.Repository
	logger    logger.Interface
}

func NewAddNoteUseCase(claimRepo claim.Repository, logger logger.Interface) *AddNoteUseCase {
	return &AddNoteUseCase{
		claimRepo: claimRepo,
		logger:    logger,
	}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) (*AddNoteResult, error) {
	uc.logger.Infow("executing add note use case", "claim_id", cmd.ClaimID, "actor_id", cmd.Actor.ID)

	if cmd.ClaimID == 0 {
		return nil, errors.NewValidationError("claim ID is required")
	}
	if cmd.Body == "" {
		return nil, errors.NewValidationError("note body is required")
	}

	c, err := uc.claimRepo.GetByID(ctx, cmd.ClaimID)
	if err != nil {
		if stderrors.Is(err, claim.ErrClaimNotFound) {
			return nil, errors.NewNotFoundError("claim not found")
		}
		uc.logger.Errorw("failed to load claim", "claim_id", cmd.ClaimID, "error", err)
		return nil, err
	}

	note, err := c.Annotate(cmd.Body, cmd.Actor.ID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.claimRepo.AppendNote(ctx, c.ID(), note); err != nil {
		uc.logger.Errorw("failed to append note", "claim_id", c.ID(), "error", err)
		return nil, err
	}

	return &AddNoteResult{
		ClaimID:   c.ID(),
		NoteID:    note.ID(),
		CreatedAt: note.CreatedAt(),
	}, nil
}
