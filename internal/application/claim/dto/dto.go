// Package dto contains the transport-facing claim representations returned by
// the application layer.
package dto

import (
	"time"

	"warrantly/internal/domain/claim"
)

type ItemDTO struct {
	ID          uint   `json:"id"`
	SKU         string `json:"sku"`
	ProductName string `json:"product_name,omitempty"`
	ProductType string `json:"product_type"`
	CategoryID  uint   `json:"category_id"`
	Quantity    int    `json:"quantity"`
	Issue       string `json:"issue,omitempty"`
}

type NoteDTO struct {
	ID            uint      `json:"id"`
	Kind          string    `json:"kind"`
	Body          string    `json:"body"`
	StatusChanged bool      `json:"status_changed"`
	OldStatus     string    `json:"old_status,omitempty"`
	NewStatus     string    `json:"new_status,omitempty"`
	AuthorID      uint      `json:"author_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type MediaDTO struct {
	ID          uint   `json:"id"`
	ClaimItemID uint   `json:"claim_item_id,omitempty"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Filename    string `json:"filename,omitempty"`
	SizeBytes   int64  `json:"size_bytes"`
}

type ClaimDTO struct {
	ID            uint       `json:"id"`
	ClaimNumber   string     `json:"claim_number"`
	OrderID       string     `json:"order_id"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email,omitempty"`
	CustomerPhone string     `json:"customer_phone,omitempty"`
	DeliveryDate  *time.Time `json:"delivery_date,omitempty"`
	Status        string     `json:"status"`
	CreatedBy     uint       `json:"created_by,omitempty"`
	AssignedTo    uint       `json:"assigned_to,omitempty"`
	Items         []ItemDTO  `json:"items"`
	Notes         []NoteDTO  `json:"notes"`
	Media         []MediaDTO `json:"media"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// WarrantyDTO is the per-SKU warranty determination outcome.
type WarrantyDTO struct {
	SKU            string    `json:"sku"`
	ProductType    string    `json:"product_type"`
	DurationMonths int       `json:"duration_months"`
	ExpiryDate     time.Time `json:"expiry_date"`
	IsValid        bool      `json:"is_valid"`
}

func ToClaimDTO(c *claim.Claim) *ClaimDTO {
	items := make([]ItemDTO, 0, len(c.Items()))
	for _, item := range c.Items() {
		items = append(items, ItemDTO{
			ID:          item.ID(),
			SKU:         item.SKU(),
			ProductName: item.ProductName(),
			ProductType: item.ProductType(),
			CategoryID:  item.CategoryID(),
			Quantity:    item.Quantity(),
			Issue:       item.Issue(),
		})
	}

	notes := make([]NoteDTO, 0, len(c.Notes()))
	for _, note := range c.Notes() {
		n := NoteDTO{
			ID:            note.ID(),
			Kind:          string(note.Kind()),
			Body:          note.Body(),
			StatusChanged: note.StatusChanged(),
			AuthorID:      note.AuthorID(),
			CreatedAt:     note.CreatedAt(),
		}
		if note.StatusChanged() {
			n.OldStatus = note.OldStatus().String()
			n.NewStatus = note.NewStatus().String()
		}
		notes = append(notes, n)
	}

	media := make([]MediaDTO, 0, len(c.Media()))
	for _, m := range c.Media() {
		media = append(media, MediaDTO{
			ID:          m.ID(),
			ClaimItemID: m.ClaimItemID(),
			Type:        m.Type().String(),
			URL:         m.URL(),
			Filename:    m.OriginalFilename(),
			SizeBytes:   m.SizeBytes(),
		})
	}

	d := &ClaimDTO{
		ID:            c.ID(),
		ClaimNumber:   c.ClaimNumber().String(),
		OrderID:       c.OrderID(),
		CustomerName:  c.CustomerName(),
		CustomerEmail: c.CustomerEmail(),
		CustomerPhone: c.CustomerPhone(),
		Status:        c.Status().String(),
		CreatedBy:     c.CreatedBy(),
		AssignedTo:    c.AssignedTo(),
		Items:         items,
		Notes:         notes,
		Media:         media,
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
	if !c.DeliveryDate().IsZero() {
		delivered := c.DeliveryDate()
		d.DeliveryDate = &delivered
	}
	return d
}

func ToClaimDTOs(claims []*claim.Claim) []*ClaimDTO {
	dtos := make([]*ClaimDTO, 0, len(claims))
	for _, c := range claims {
		dtos = append(dtos, ToClaimDTO(c))
	}
	return dtos
}
