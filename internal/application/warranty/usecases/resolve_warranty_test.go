package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warrantly/internal/domain/warranty"
	apperrors "warrantly/internal/shared/errors"
	"warrantly/internal/shared/logger"
)

type stubRuleRepo struct {
	rules map[string]*warranty.Rule
}

func (s *stubRuleRepo) Save(ctx context.Context, r *warranty.Rule) error { return nil }

func (s *stubRuleRepo) FindByProductType(ctx context.Context, productType string) (*warranty.Rule, error) {
	if r, ok := s.rules[productType]; ok {
		return r, nil
	}
	return nil, warranty.ErrRuleNotFound
}

func (s *stubRuleRepo) List(ctx context.Context) ([]*warranty.Rule, error) { return nil, nil }

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

func newUseCase(t *testing.T) *ResolveWarrantyUseCase {
	t.Helper()
	rule, err := warranty.NewRule("TRAPO CLASSIC", 12, "manufacturing defects", "")
	require.NoError(t, err)

	repo := &stubRuleRepo{rules: map[string]*warranty.Rule{"TRAPO CLASSIC": rule}}
	resolver := warranty.NewResolverWithClock(repo, func() time.Time {
		return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	})
	return NewResolveWarrantyUseCase(resolver, nopLogger{})
}

func TestResolveWarrantyUseCase_Execute(t *testing.T) {
	uc := newUseCase(t)

	result, err := uc.Execute(context.Background(), ResolveWarrantyQuery{
		SKU:       "TRC-SEDAN",
		OrderDate: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "TRAPO CLASSIC", result.ProductType)
	assert.Equal(t, 12, result.DurationMonths)
	assert.True(t, result.IsValid)
}

func TestResolveWarrantyUseCase_Execute_UnknownSKU(t *testing.T) {
	uc := newUseCase(t)

	result, err := uc.Execute(context.Background(), ResolveWarrantyQuery{
		SKU:       "ZZZ-1",
		OrderDate: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "OTHER", result.ProductType)
	assert.Equal(t, 0, result.DurationMonths)
	assert.False(t, result.IsValid)
}

func TestResolveWarrantyUseCase_Execute_Validation(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.Execute(context.Background(), ResolveWarrantyQuery{})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.Len(t, appErr.Fields, 2)
}
