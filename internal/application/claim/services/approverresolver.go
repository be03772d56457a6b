// Package services holds claim application services shared across use cases.
package services

import (
	"context"

	"warrantly/internal/domain/category"
	"warrantly/internal/domain/user"
	"warrantly/internal/shared/logger"
)

// ApproverResolver maps a claim category to the active users who review its
// claims. Role labels match exactly and case-sensitively; an empty result is
// a legitimate outcome, not an error.
type ApproverResolver struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewApproverResolver(userRepo user.Repository, logger logger.Interface) *ApproverResolver {
	return &ApproverResolver{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Resolve returns the active approvers for cat. A category without an
// approver role resolves to nobody.
func (r *ApproverResolver) Resolve(ctx context.Context, cat *category.Category) ([]*user.User, error) {
	if !cat.HasApprover() {
		return nil, nil
	}

	approvers, err := r.userRepo.FindActiveByApproverRole(ctx, cat.ApproverRole())
	if err != nil {
		return nil, err
	}

	if len(approvers) == 0 {
		r.logger.Warnw("category has approver role but no active users hold it",
			"category_id", cat.ID(),
			"approver_role", cat.ApproverRole(),
		)
	}

	return approvers, nil
}

// ResolveEmails is Resolve flattened to the recipient addresses the
// notification router consumes.
func (r *ApproverResolver) ResolveEmails(ctx context.Context, cat *category.Category) ([]string, error) {
	approvers, err := r.Resolve(ctx, cat)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(approvers))
	for _, approver := range approvers {
		emails = append(emails, approver.Email())
	}
	return emails, nil
}
