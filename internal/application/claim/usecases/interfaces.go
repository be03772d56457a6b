package usecases

import (
	"context"

	"warrantly/internal/application/claim/dto"
)

// TransactionManager runs a function inside a database transaction.
// Repositories called within fn share the transaction through the context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateClaimExecutor interface {
	Execute(ctx context.Context, cmd CreateClaimCommand) (*CreateClaimResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type AddNoteExecutor interface {
	Execute(ctx context.Context, cmd AddNoteCommand) (*AddNoteResult, error)
}

type GetClaimExecutor interface {
	Execute(ctx context.Context, query GetClaimQuery) (*dto.ClaimDTO, error)
}

type ListClaimsExecutor interface {
	Execute(ctx context.Context, query ListClaimsQuery) (*ListClaimsResult, error)
}
