// Package category holds the claim category reference data. A category binds
// claim items to an approver role and an SLA; it is shared data, owned by no
// single claim.
package category

import (
	"fmt"
	"time"
)

type Category struct {
	id           uint
	name         string
	approverRole string
	slaDays      int
	description  string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewCategory creates a category. approverRole may be empty: claims in such a
// category proceed with no approver notifications.
func NewCategory(name, approverRole string, slaDays int, description string) (*Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if slaDays < 0 {
		return nil, fmt.Errorf("SLA days cannot be negative")
	}

	now := time.Now()
	return &Category{
		name:         name,
		approverRole: approverRole,
		slaDays:      slaDays,
		description:  description,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructCategory(
	id uint,
	name, approverRole string,
	slaDays int,
	description string,
	createdAt, updatedAt time.Time,
) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	return &Category{
		id:           id,
		name:         name,
		approverRole: approverRole,
		slaDays:      slaDays,
		description:  description,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) ApproverRole() string {
	return c.approverRole
}

func (c *Category) SLADays() int {
	return c.slaDays
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

// HasApprover reports whether claims in this category route to anyone.
func (c *Category) HasApprover() bool {
	return c.approverRole != ""
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}
