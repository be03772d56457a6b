package valueobjects

import (
	"fmt"
	"regexp"
	"strings"

	"warrantly/internal/shared/id"
)

// orderRefPattern matches storefront order references like "TMR-O12345".
// The digit run after the marker becomes the claim number suffix.
var orderRefPattern = regexp.MustCompile(`^TMR-O(\d+)$`)

const claimNumberPrefix = "CLAIM-"

// ClaimNumber is the human-facing claim identifier.
type ClaimNumber struct {
	value string
}

// DeriveClaimNumber builds a claim number from the order reference. A
// recognized order reference yields a deterministic number so support staff
// can map claims back to orders by eye; anything else gets a random suffix.
func DeriveClaimNumber(orderID string) ClaimNumber {
	if m := orderRefPattern.FindStringSubmatch(strings.TrimSpace(orderID)); m != nil {
		return ClaimNumber{value: claimNumberPrefix + m[1]}
	}
	return ClaimNumber{value: claimNumberPrefix + "X" + id.NewClaimSuffix()}
}

// ReconstructClaimNumber restores a persisted claim number.
func ReconstructClaimNumber(value string) (ClaimNumber, error) {
	if !strings.HasPrefix(value, claimNumberPrefix) || len(value) == len(claimNumberPrefix) {
		return ClaimNumber{}, fmt.Errorf("invalid claim number: %s", value)
	}
	return ClaimNumber{value: value}, nil
}

func (n ClaimNumber) String() string {
	return n.value
}

func (n ClaimNumber) IsZero() bool {
	return n.value == ""
}
