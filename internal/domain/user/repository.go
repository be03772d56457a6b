package user

import "context"

// Repository is the read-only user directory port.
type Repository interface {
	GetByID(ctx context.Context, id uint) (*User, error)
	// FindActiveByApproverRole returns all active users whose approver role
	// label exactly equals role. Zero matches is a valid outcome, not an
	// error.
	FindActiveByApproverRole(ctx context.Context, role string) ([]*User, error)
}
