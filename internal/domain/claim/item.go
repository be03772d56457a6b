package claim

import "fmt"

// Item is a claimed product line within a claim. Each line carries its own
// category so approver routing can differ per product.
type Item struct {
	id          uint
	claimID     uint
	sku         string
	productName string
	productType string
	categoryID  uint
	quantity    int
	issue       string
}

func NewItem(sku, productName, productType, issue string, categoryID uint, quantity int) (*Item, error) {
	if sku == "" {
		return nil, fmt.Errorf("sku is required")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category is required")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	if issue == "" {
		return nil, fmt.Errorf("issue description is required")
	}
	return &Item{
		sku:         sku,
		productName: productName,
		productType: productType,
		categoryID:  categoryID,
		quantity:    quantity,
		issue:       issue,
	}, nil
}

func ReconstructItem(id, claimID uint, sku, productName, productType, issue string, categoryID uint, quantity int) (*Item, error) {
	if id == 0 {
		return nil, fmt.Errorf("item ID cannot be zero")
	}
	return &Item{
		id:          id,
		claimID:     claimID,
		sku:         sku,
		productName: productName,
		productType: productType,
		categoryID:  categoryID,
		quantity:    quantity,
		issue:       issue,
	}, nil
}

func (i *Item) ID() uint { return i.id }

func (i *Item) ClaimID() uint { return i.claimID }

func (i *Item) SKU() string { return i.sku }

func (i *Item) ProductName() string { return i.productName }

func (i *Item) ProductType() string { return i.productType }

func (i *Item) CategoryID() uint { return i.categoryID }

func (i *Item) Quantity() int { return i.quantity }

func (i *Item) Issue() string { return i.issue }

func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("item ID cannot be zero")
	}
	i.id = id
	return nil
}

func (i *Item) AttachTo(claimID uint) {
	i.claimID = claimID
}
