package valueobjects

import "fmt"

// Status represents the user account status. Only active users participate in
// approver routing.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var validStatuses = map[Status]bool{
	StatusActive:   true,
	StatusInactive: true,
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !validStatuses[status] {
		return "", fmt.Errorf("invalid user status: %s", s)
	}
	return status, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsActive() bool {
	return s == StatusActive
}
