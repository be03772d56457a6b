package notification

import (
	"fmt"
	"sort"
	"strings"

	uservo "warrantly/internal/domain/user/valueobjects"
)

// Flags gate the optional recipient channels.
type Flags struct {
	NotifyCustomer     bool
	NotifyStaffCreator bool
}

// ClaimEvent carries everything routing needs to know about a claim event.
// Approvers may contain duplicates and casing noise; the router normalizes.
// Approvers is already the union across the claim's item categories.
type ClaimEvent struct {
	ClaimNumber   string
	OrderID       string
	CustomerName  string
	CustomerEmail string
	CategoryNames []string
	// StaffCreatorEmail is empty for customer-channel claims.
	StaffCreatorEmail string
	Approvers         []string
	FromStatus        string
	ToStatus          string
	NoteBody          string
}

// Router turns claim events into notification intents. It holds no I/O.
type Router struct {
	flags Flags
}

func NewRouter(flags Flags) *Router {
	return &Router{flags: flags}
}

// RouteClaimCreated produces the intents for a freshly created claim: a
// customer acknowledgement, an internal approver alert, and a confirmation to
// the staff creator. Each may be dropped when its flag is off or its recipient
// set ends up empty; a creator already in the approver set is not told twice.
func (r *Router) RouteClaimCreated(event ClaimEvent) []Intent {
	payload := map[string]string{
		"claim_number":  event.ClaimNumber,
		"order_id":      event.OrderID,
		"customer_name": event.CustomerName,
		"category_name": strings.Join(event.CategoryNames, ", "),
	}

	var intents []Intent

	if r.flags.NotifyCustomer {
		customer := normalizeRecipients([]string{event.CustomerEmail})
		if len(customer) > 0 {
			intents = append(intents, Intent{
				TemplateID: TemplateClaimCreatedCustomer,
				Recipients: customer,
				Payload:    payload,
				DedupeKey:  dedupeKey(TemplateClaimCreatedCustomer, event.ClaimNumber),
			})
		}
	}

	approvers := normalizeRecipients(event.Approvers)
	if len(approvers) > 0 {
		intents = append(intents, Intent{
			TemplateID: TemplateClaimCreatedInternal,
			Recipients: approvers,
			Payload:    payload,
			DedupeKey:  dedupeKey(TemplateClaimCreatedInternal, event.ClaimNumber),
		})
	}

	if r.flags.NotifyStaffCreator {
		creator := normalizeRecipients([]string{event.StaffCreatorEmail})
		if len(creator) > 0 && !contains(approvers, creator[0]) {
			intents = append(intents, Intent{
				TemplateID: TemplateClaimCreatedInternal,
				Recipients: creator,
				Payload:    payload,
				DedupeKey:  dedupeKey(TemplateClaimCreatedInternal, event.ClaimNumber, "creator"),
			})
		}
	}

	return intents
}

// RouteStatusChanged produces the internal status change intent. The staff
// creator rides along when the flag allows it; being an approver already
// covers them thanks to deduplication.
func (r *Router) RouteStatusChanged(event ClaimEvent) []Intent {
	recipients := event.Approvers
	if r.flags.NotifyStaffCreator && event.StaffCreatorEmail != "" {
		recipients = append(append([]string{}, recipients...), event.StaffCreatorEmail)
	}

	normalized := normalizeRecipients(recipients)
	if len(normalized) == 0 {
		return nil
	}

	return []Intent{{
		TemplateID: TemplateClaimStatusChanged,
		Recipients: normalized,
		Payload: map[string]string{
			"claim_number": event.ClaimNumber,
			"order_id":     event.OrderID,
			"from_status":  event.FromStatus,
			"to_status":    event.ToStatus,
			"note":         event.NoteBody,
		},
		DedupeKey: dedupeKey(TemplateClaimStatusChanged, event.ClaimNumber, event.FromStatus, event.ToStatus),
	}}
}

// normalizeRecipients lower-cases, drops invalid addresses and duplicates, and
// returns a deterministic ordering.
func normalizeRecipients(addresses []string) []string {
	seen := make(map[string]bool, len(addresses))
	var out []string
	for _, addr := range addresses {
		normalized := strings.TrimSpace(strings.ToLower(addr))
		if normalized == "" || seen[normalized] {
			continue
		}
		if !uservo.IsValidEmail(normalized) {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	sort.Strings(out)
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func dedupeKey(parts ...string) string {
	return fmt.Sprintf("notify:%s", strings.Join(parts, ":"))
}
