package warranty

import (
	"errors"
	"fmt"
	"time"
)

// FallbackProductType is the synthetic product type used when a SKU matches
// no configured prefix. A rule row for it is the catch-all warranty policy.
const FallbackProductType = "OTHER"

// ErrRuleNotFound is returned by RuleRepository lookups when no rule row
// exists for a product type. The resolver treats it as a fallback signal,
// never as a failure.
var ErrRuleNotFound = errors.New("warranty rule not found")

// Rule is a per-product-type warranty policy. Rows are administrator-curated
// reference data and read-only to the engine at evaluation time.
type Rule struct {
	id             uint
	productType    string
	durationMonths int
	coverage       string
	exclusions     string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewRule(productType string, durationMonths int, coverage, exclusions string) (*Rule, error) {
	if productType == "" {
		return nil, fmt.Errorf("product type is required")
	}
	if durationMonths < 0 {
		return nil, fmt.Errorf("duration months cannot be negative")
	}

	now := time.Now()
	return &Rule{
		productType:    productType,
		durationMonths: durationMonths,
		coverage:       coverage,
		exclusions:     exclusions,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructRule(
	id uint,
	productType string,
	durationMonths int,
	coverage, exclusions string,
	createdAt, updatedAt time.Time,
) (*Rule, error) {
	if id == 0 {
		return nil, fmt.Errorf("rule ID cannot be zero")
	}
	if productType == "" {
		return nil, fmt.Errorf("product type is required")
	}
	if durationMonths < 0 {
		return nil, fmt.Errorf("duration months cannot be negative")
	}

	return &Rule{
		id:             id,
		productType:    productType,
		durationMonths: durationMonths,
		coverage:       coverage,
		exclusions:     exclusions,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (r *Rule) ID() uint {
	return r.id
}

func (r *Rule) ProductType() string {
	return r.productType
}

func (r *Rule) DurationMonths() int {
	return r.durationMonths
}

func (r *Rule) Coverage() string {
	return r.coverage
}

func (r *Rule) Exclusions() string {
	return r.exclusions
}

func (r *Rule) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Rule) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Rule) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("rule ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("rule ID cannot be zero")
	}
	r.id = id
	return nil
}
