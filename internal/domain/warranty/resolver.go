package warranty

import (
	"context"
	"errors"
	"time"

	"warrantly/internal/shared/biztime"
	apperrors "warrantly/internal/shared/errors"
)

// Determination is the outcome of resolving a SKU against the rule table.
type Determination struct {
	ProductType    string
	DurationMonths int
	ExpiryDate     time.Time
	IsValid        bool
}

// Resolver derives a product's warranty window from its SKU and the rule
// table. It is a pure function of its inputs and the table snapshot; the only
// error it can produce is a genuine rule-table storage failure.
type Resolver struct {
	rules RuleRepository
	now   func() time.Time
}

func NewResolver(rules RuleRepository) *Resolver {
	return &Resolver{
		rules: rules,
		now:   time.Now,
	}
}

// NewResolverWithClock builds a resolver with a fixed clock for tests.
func NewResolverWithClock(rules RuleRepository, now func() time.Time) *Resolver {
	return &Resolver{rules: rules, now: now}
}

// Resolve maps sku to a product type, looks up its warranty duration and
// computes the expiry window from orderDate.
//
// Missing rules are not errors: an unmatched product type falls back to the
// "OTHER" rule, and a missing "OTHER" rule yields a zero-month warranty.
func (r *Resolver) Resolve(ctx context.Context, sku string, orderDate time.Time) (*Determination, error) {
	productType := ResolveProductType(sku)

	months, err := r.lookupDuration(ctx, productType)
	if err != nil {
		return nil, err
	}

	expiry := biztime.AddMonths(orderDate, months)

	// Inclusive boundary: a warranty expiring today is still valid. Dates are
	// compared in the business timezone.
	today := biztime.DateOf(r.now())
	expiryDay := biztime.DateOf(expiry)

	return &Determination{
		ProductType:    productType,
		DurationMonths: months,
		ExpiryDate:     expiry,
		IsValid:        !today.After(expiryDay),
	}, nil
}

func (r *Resolver) lookupDuration(ctx context.Context, productType string) (int, error) {
	rule, err := r.rules.FindByProductType(ctx, productType)
	if err == nil {
		return rule.DurationMonths(), nil
	}
	if !errors.Is(err, ErrRuleNotFound) {
		return 0, apperrors.NewRuleLookupError("failed to read warranty rule table", err.Error())
	}

	if productType != FallbackProductType {
		rule, err = r.rules.FindByProductType(ctx, FallbackProductType)
		if err == nil {
			return rule.DurationMonths(), nil
		}
		if !errors.Is(err, ErrRuleNotFound) {
			return 0, apperrors.NewRuleLookupError("failed to read warranty rule table", err.Error())
		}
	}

	// No rule and no fallback rule: zero-duration warranty by design.
	return 0, nil
}
