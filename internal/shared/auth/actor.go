// Package auth carries the authenticated actor identity through the claim
// engine. Session issuance happens upstream; the engine only ever sees an
// explicit ActorContext, never ambient globals.
package auth

import "fmt"

// Role is the closed set of staff roles the engine distinguishes.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

var validRoles = map[Role]bool{
	RoleAdmin: true,
	RoleStaff: true,
}

// NewRole parses a role label. Unknown labels are a construction-time error,
// not a silent fallthrough.
func NewRole(s string) (Role, error) {
	r := Role(s)
	if !validRoles[r] {
		return "", fmt.Errorf("invalid actor role: %s", s)
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// ActorContext identifies the authenticated user performing an operation.
type ActorContext struct {
	ID   uint
	Role Role
}

// NewActorContext builds an ActorContext, validating both parts.
func NewActorContext(id uint, role string) (ActorContext, error) {
	if id == 0 {
		return ActorContext{}, fmt.Errorf("actor ID is required")
	}
	r, err := NewRole(role)
	if err != nil {
		return ActorContext{}, err
	}
	return ActorContext{ID: id, Role: r}, nil
}

// IsAdmin reports whether the actor holds administrator privilege.
func (a ActorContext) IsAdmin() bool {
	return a.Role.IsAdmin()
}
