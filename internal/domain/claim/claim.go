// Package claim holds the warranty claim aggregate and its lifecycle rules.
package claim

import (
	"errors"
	"fmt"
	"time"

	vo "warrantly/internal/domain/claim/valueobjects"
)

// Sentinel errors raised by ChangeStatus. The application layer maps these to
// the API error vocabulary.
var (
	ErrSameStatus           = errors.New("claim already has the requested status")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
	ErrAdminRequired        = errors.New("only administrators may resolve a claim")
)

// Claim is the aggregate root. Items, notes and media always travel with it;
// the claim is created and persisted as one unit. Each item carries its own
// category, so one claim can route to several approver roles.
type Claim struct {
	id            uint
	claimNumber   vo.ClaimNumber
	orderID       string
	customerName  string
	customerEmail string
	customerPhone string
	// deliveryDate is when the order reached the customer, zero when the
	// order snapshot did not carry one.
	deliveryDate time.Time
	status       vo.Status
	// createdBy is the staff user who filed the claim, zero when the claim
	// came in through the customer channel.
	createdBy uint
	// assignedTo is the reviewer currently owning the claim, zero while
	// unassigned.
	assignedTo uint
	items      []*Item
	notes      []*Note
	media      []*Media
	// version backs optimistic locking on status updates.
	version   uint
	createdAt time.Time
	updatedAt time.Time
}

func NewClaim(orderID, customerName, customerEmail, customerPhone string, deliveryDate time.Time, createdBy uint) (*Claim, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order ID is required")
	}
	if customerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}

	now := time.Now()
	return &Claim{
		claimNumber:   vo.DeriveClaimNumber(orderID),
		orderID:       orderID,
		customerName:  customerName,
		customerEmail: customerEmail,
		customerPhone: customerPhone,
		deliveryDate:  deliveryDate,
		status:        vo.StatusNew,
		createdBy:     createdBy,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructClaim(
	id uint,
	claimNumber vo.ClaimNumber,
	orderID, customerName, customerEmail, customerPhone string,
	deliveryDate time.Time,
	status vo.Status,
	createdBy, assignedTo, version uint,
	createdAt, updatedAt time.Time,
) (*Claim, error) {
	if id == 0 {
		return nil, fmt.Errorf("claim ID cannot be zero")
	}
	if claimNumber.IsZero() {
		return nil, fmt.Errorf("claim number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Claim{
		id:            id,
		claimNumber:   claimNumber,
		orderID:       orderID,
		customerName:  customerName,
		customerEmail: customerEmail,
		customerPhone: customerPhone,
		deliveryDate:  deliveryDate,
		status:        status,
		createdBy:     createdBy,
		assignedTo:    assignedTo,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (c *Claim) ID() uint { return c.id }

func (c *Claim) ClaimNumber() vo.ClaimNumber { return c.claimNumber }

func (c *Claim) OrderID() string { return c.orderID }

func (c *Claim) CustomerName() string { return c.customerName }

func (c *Claim) CustomerEmail() string { return c.customerEmail }

func (c *Claim) CustomerPhone() string { return c.customerPhone }

func (c *Claim) DeliveryDate() time.Time { return c.deliveryDate }

func (c *Claim) Status() vo.Status { return c.status }

func (c *Claim) CreatedBy() uint { return c.createdBy }

func (c *Claim) AssignedTo() uint { return c.assignedTo }

func (c *Claim) Items() []*Item { return c.items }

func (c *Claim) Notes() []*Note { return c.notes }

func (c *Claim) Media() []*Media { return c.media }

func (c *Claim) Version() uint { return c.version }

func (c *Claim) CreatedAt() time.Time { return c.createdAt }

func (c *Claim) UpdatedAt() time.Time { return c.updatedAt }

func (c *Claim) AddItem(item *Item) {
	c.items = append(c.items, item)
}

func (c *Claim) AddNote(note *Note) {
	c.notes = append(c.notes, note)
}

func (c *Claim) AddMedia(media *Media) {
	c.media = append(c.media, media)
}

// Assign hands the claim to a reviewer. Zero clears the assignment.
func (c *Claim) Assign(userID uint) {
	c.assignedTo = userID
	c.updatedAt = time.Now()
}

// HasItemWithSKU reports whether any existing line already covers sku.
func (c *Claim) HasItemWithSKU(sku string) bool {
	for _, item := range c.items {
		if item.SKU() == sku {
			return true
		}
	}
	return false
}

// CategoryIDs returns the distinct categories across the claim's items, in
// first-seen order. Notification routing resolves approvers per category.
func (c *Claim) CategoryIDs() []uint {
	seen := make(map[uint]bool, len(c.items))
	var ids []uint
	for _, item := range c.items {
		if id := item.CategoryID(); id != 0 && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// ChangeStatus applies a lifecycle transition and appends the accompanying
// note. Transitions out of a terminal status fail; moving to resolved is open
// from any non-terminal status but only to administrators. A repeat of the
// current status returns ErrSameStatus so callers can decide whether the
// request degrades into a plain annotation.
func (c *Claim) ChangeStatus(target vo.Status, noteBody string, actorID uint, actorIsAdmin bool) (*Note, error) {
	if target == c.status {
		return nil, ErrSameStatus
	}
	if c.status.IsTerminal() {
		return nil, ErrTransitionNotAllowed
	}

	if target == vo.StatusResolved {
		if !actorIsAdmin {
			return nil, ErrAdminRequired
		}
	} else if !c.status.CanTransitionTo(target) {
		return nil, ErrTransitionNotAllowed
	}

	note := NewStatusChangeNote(c.status, target, noteBody, actorID)
	c.status = target
	c.notes = append(c.notes, note)
	c.version++
	c.updatedAt = time.Now()
	return note, nil
}

// Annotate appends a comment note without touching the status.
func (c *Claim) Annotate(body string, authorID uint) (*Note, error) {
	note, err := NewNote(body, authorID)
	if err != nil {
		return nil, err
	}
	c.notes = append(c.notes, note)
	c.updatedAt = time.Now()
	return note, nil
}

func (c *Claim) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("claim ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("claim ID cannot be zero")
	}
	c.id = id
	for _, item := range c.items {
		item.AttachTo(id)
	}
	for _, note := range c.notes {
		note.AttachTo(id)
	}
	for _, m := range c.media {
		m.AttachTo(id)
	}
	return nil
}
