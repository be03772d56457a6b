package models

type ClaimModel struct {
	ID            uint   `gorm:"primaryKey"`
	ClaimNumber   string `gorm:"uniqueIndex;size:50;not null"`
	OrderID       string `gorm:"size:100;not null;index"`
	CustomerName  string `gorm:"size:200;not null"`
	CustomerEmail string `gorm:"size:255"`
	CustomerPhone string `gorm:"size:50"`
	// DeliveryDate is millis since epoch, zero when unknown.
	DeliveryDate int64
	Status       string `gorm:"size:20;not null;index"`
	CreatedBy    uint   `gorm:"index"`
	AssignedTo   uint   `gorm:"index"`
	Version      uint   `gorm:"not null;default:1"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ClaimModel) TableName() string {
	return "claims"
}

// ClaimItemModel carries the hard duplicate guard: the unique index on
// (order_id, sku) is what ultimately rejects a second claim for the same
// order line, even under concurrent creates.
type ClaimItemModel struct {
	ID          uint   `gorm:"primaryKey"`
	ClaimID     uint   `gorm:"not null;index"`
	OrderID     string `gorm:"size:100;not null;uniqueIndex:idx_claim_items_order_sku"`
	SKU         string `gorm:"size:100;not null;uniqueIndex:idx_claim_items_order_sku"`
	ProductName string `gorm:"size:200"`
	ProductType string `gorm:"size:50;not null"`
	CategoryID  uint   `gorm:"not null;index"`
	Quantity    int    `gorm:"not null"`
	Issue       string `gorm:"type:text"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ClaimItemModel) TableName() string {
	return "claim_items"
}

type ClaimNoteModel struct {
	ID      uint   `gorm:"primaryKey"`
	ClaimID uint   `gorm:"not null;index"`
	Kind    string `gorm:"size:20;not null"`
	Body    string `gorm:"type:text;not null"`
	// OldStatus and NewStatus are set only on status_change notes.
	OldStatus string `gorm:"size:20"`
	NewStatus string `gorm:"size:20"`
	AuthorID  uint   `gorm:"index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (ClaimNoteModel) TableName() string {
	return "claim_notes"
}

type ClaimMediaModel struct {
	ID      uint `gorm:"primaryKey"`
	ClaimID uint `gorm:"not null;index"`
	// ClaimItemID scopes the attachment to one item, zero for claim-wide.
	ClaimItemID      uint   `gorm:"index"`
	MediaType        string `gorm:"size:10;not null"`
	URL              string `gorm:"size:2048;not null"`
	OriginalFilename string `gorm:"size:255"`
	SizeBytes        int64  `gorm:"not null"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ClaimMediaModel) TableName() string {
	return "claim_media"
}
