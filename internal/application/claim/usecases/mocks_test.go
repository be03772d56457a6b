package usecases

import (
	"context"

	"warrantly/internal/domain/category"
	"warrantly/internal/domain/claim"
	"warrantly/internal/domain/notification"
	"warrantly/internal/domain/user"
	"warrantly/internal/domain/warranty"
	"warrantly/internal/shared/logger"
)

type mockClaimRepository struct {
	SaveFunc                func(ctx context.Context, c *claim.Claim) error
	UpdateFunc              func(ctx context.Context, c *claim.Claim) error
	GetByIDFunc             func(ctx context.Context, id uint) (*claim.Claim, error)
	GetByNumberFunc         func(ctx context.Context, number string) (*claim.Claim, error)
	ExistsByOrderAndSKUFunc func(ctx context.Context, orderID, sku string) (bool, error)
	AppendNoteFunc          func(ctx context.Context, claimID uint, note *claim.Note) error
	ListFunc                func(ctx context.Context, filter claim.ListFilter) ([]*claim.Claim, int64, error)
}

func (m *mockClaimRepository) Save(ctx context.Context, c *claim.Claim) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockClaimRepository) Update(ctx context.Context, c *claim.Claim) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockClaimRepository) GetByID(ctx context.Context, id uint) (*claim.Claim, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, claim.ErrClaimNotFound
}

func (m *mockClaimRepository) GetByNumber(ctx context.Context, number string) (*claim.Claim, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, claim.ErrClaimNotFound
}

func (m *mockClaimRepository) ExistsByOrderAndSKU(ctx context.Context, orderID, sku string) (bool, error) {
	if m.ExistsByOrderAndSKUFunc != nil {
		return m.ExistsByOrderAndSKUFunc(ctx, orderID, sku)
	}
	return false, nil
}

func (m *mockClaimRepository) AppendNote(ctx context.Context, claimID uint, note *claim.Note) error {
	if m.AppendNoteFunc != nil {
		return m.AppendNoteFunc(ctx, claimID, note)
	}
	return nil
}

func (m *mockClaimRepository) List(ctx context.Context, filter claim.ListFilter) ([]*claim.Claim, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockCategoryRepository struct {
	SaveFunc    func(ctx context.Context, c *category.Category) error
	GetByIDFunc func(ctx context.Context, id uint) (*category.Category, error)
	ListFunc    func(ctx context.Context) ([]*category.Category, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, c *category.Category) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockUserRepository struct {
	GetByIDFunc                  func(ctx context.Context, id uint) (*user.User, error)
	FindActiveByApproverRoleFunc func(ctx context.Context, role string) ([]*user.User, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindActiveByApproverRole(ctx context.Context, role string) ([]*user.User, error) {
	if m.FindActiveByApproverRoleFunc != nil {
		return m.FindActiveByApproverRoleFunc(ctx, role)
	}
	return nil, nil
}

type mockRuleRepository struct {
	FindByProductTypeFunc func(ctx context.Context, productType string) (*warranty.Rule, error)
}

func (m *mockRuleRepository) Save(ctx context.Context, r *warranty.Rule) error {
	return nil
}

func (m *mockRuleRepository) FindByProductType(ctx context.Context, productType string) (*warranty.Rule, error) {
	if m.FindByProductTypeFunc != nil {
		return m.FindByProductTypeFunc(ctx, productType)
	}
	return nil, warranty.ErrRuleNotFound
}

func (m *mockRuleRepository) List(ctx context.Context) ([]*warranty.Rule, error) {
	return nil, nil
}

type mockDispatcher struct {
	DispatchFunc func(ctx context.Context, intents []notification.Intent) error
	dispatched   [][]notification.Intent
}

func (m *mockDispatcher) Dispatch(ctx context.Context, intents []notification.Intent) error {
	m.dispatched = append(m.dispatched, intents)
	if m.DispatchFunc != nil {
		return m.DispatchFunc(ctx, intents)
	}
	return nil
}

// mockTxManager runs the function directly, no transaction semantics.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any) {}

func (nopLogger) Info(msg string, args ...any) {}

func (nopLogger) Warn(msg string, args ...any) {}

func (nopLogger) Error(msg string, args ...any) {}

func (l nopLogger) With(args ...any) logger.Interface { return l }

func (l nopLogger) Named(name string) logger.Interface { return l }

func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}

func (nopLogger) Infow(msg string, keysAndValues ...interface{}) {}

func (nopLogger) Warnw(msg string, keysAndValues ...interface{}) {}

func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
