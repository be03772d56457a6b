// Package user is the staff directory view the claim engine consumes.
// Authentication happens upstream; this aggregate only carries the identity,
// contact and role data needed for approver resolution and notifications.
package user

import (
	"fmt"
	"time"

	vo "warrantly/internal/domain/user/valueobjects"
)

type User struct {
	id          uint
	displayName string
	email       *vo.Email
	// approverRole is the free-form role label (e.g. "Finance") matched
	// against category approver roles. Exact, case-sensitive matching by
	// design: labels are an administrator-curated vocabulary.
	approverRole string
	isAdmin      bool
	status       vo.Status
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(displayName, email, approverRole string, isAdmin bool) (*User, error) {
	if displayName == "" {
		return nil, fmt.Errorf("display name is required")
	}

	emailVO, err := vo.NewEmail(email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &User{
		displayName:  displayName,
		email:        emailVO,
		approverRole: approverRole,
		isAdmin:      isAdmin,
		status:       vo.StatusActive,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	displayName, email, approverRole string,
	isAdmin bool,
	status vo.Status,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if displayName == "" {
		return nil, fmt.Errorf("display name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	emailVO, err := vo.NewEmail(email)
	if err != nil {
		return nil, err
	}

	return &User{
		id:           id,
		displayName:  displayName,
		email:        emailVO,
		approverRole: approverRole,
		isAdmin:      isAdmin,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) DisplayName() string {
	return u.displayName
}

func (u *User) Email() string {
	return u.email.String()
}

func (u *User) ApproverRole() string {
	return u.approverRole
}

func (u *User) IsAdmin() bool {
	return u.isAdmin
}

func (u *User) Status() vo.Status {
	return u.status
}

func (u *User) IsActive() bool {
	return u.status.IsActive()
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) Deactivate() {
	u.status = vo.StatusInactive
	u.updatedAt = time.Now()
}

func (u *User) Activate() {
	u.status = vo.StatusActive
	u.updatedAt = time.Now()
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
