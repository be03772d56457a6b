// Package notification decides who gets told about claim events. Routing is a
// pure computation over claim data and recipient sets; delivery is behind the
// Dispatcher port.
package notification

// Template identifiers understood by the delivery layer.
const (
	TemplateClaimCreatedCustomer = "claim_created_customer"
	TemplateClaimCreatedInternal = "claim_created_internal"
	TemplateClaimStatusChanged   = "claim_status_changed"
)

// Intent is a single notification to send: one template, one recipient set,
// one payload. Recipients within an intent are unique.
type Intent struct {
	TemplateID string
	Recipients []string
	Payload    map[string]string
	// DedupeKey suppresses repeat sends of the same logical notification.
	// Empty means no suppression.
	DedupeKey string
}

// IsEmpty reports whether the intent has nobody to reach.
func (i Intent) IsEmpty() bool {
	return len(i.Recipients) == 0
}
