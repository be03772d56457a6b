package valueobjects

import "fmt"

// Status represents the lifecycle state of a warranty claim.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusOnHold     Status = "on_hold"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusResolved   Status = "resolved"
)

var validStatuses = map[Status]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusOnHold:     true,
	StatusApproved:   true,
	StatusRejected:   true,
	StatusResolved:   true,
}

// statusTransitions defines the forward path of the lifecycle. Resolution is
// handled separately because it is reachable from any non-terminal status and
// gated on the actor being an administrator.
var statusTransitions = map[Status][]Status{
	StatusNew:        {StatusInProgress},
	StatusInProgress: {StatusOnHold},
	StatusOnHold:     {StatusApproved, StatusRejected},
	StatusApproved:   {},
	StatusRejected:   {},
	StatusResolved:   {},
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !validStatuses[status] {
		return "", fmt.Errorf("invalid claim status: %s", s)
	}
	return status, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusResolved
}

// CanTransitionTo checks the forward lifecycle path. It deliberately excludes
// the resolved shortcut; use IsTerminal on the current status plus an admin
// check for that.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}
