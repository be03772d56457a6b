package warranty

import "context"

// RuleRepository is the rule-table port. FindByProductType returns
// ErrRuleNotFound when no row exists; any other error is a genuine storage
// failure.
type RuleRepository interface {
	Save(ctx context.Context, rule *Rule) error
	FindByProductType(ctx context.Context, productType string) (*Rule, error)
	List(ctx context.Context) ([]*Rule, error)
}
