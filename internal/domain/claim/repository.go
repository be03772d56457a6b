package claim

import (
	"context"
	"errors"
	"time"

	vo "warrantly/internal/domain/claim/valueobjects"
)

// ErrClaimNotFound is returned by lookups when no claim matches.
var ErrClaimNotFound = errors.New("claim not found")

// ErrVersionConflict is returned by Update when the stored version no longer
// matches the aggregate's version, meaning another writer got there first.
var ErrVersionConflict = errors.New("claim was modified concurrently")

// ListFilter narrows List results. Zero values mean "no constraint".
type ListFilter struct {
	Status     vo.Status
	CategoryID uint
	OrderID    string
	Since      time.Time
	Limit      int
	Offset     int
}

// Repository is the claim persistence port. Save persists the aggregate with
// all child rows in one transaction; Update applies an optimistic version
// check and reports a conflict error when the stored version moved on.
type Repository interface {
	Save(ctx context.Context, c *Claim) error
	Update(ctx context.Context, c *Claim) error
	GetByID(ctx context.Context, id uint) (*Claim, error)
	GetByNumber(ctx context.Context, number string) (*Claim, error)
	ExistsByOrderAndSKU(ctx context.Context, orderID, sku string) (bool, error)
	AppendNote(ctx context.Context, claimID uint, note *Note) error
	List(ctx context.Context, filter ListFilter) ([]*Claim, int64, error)
}
