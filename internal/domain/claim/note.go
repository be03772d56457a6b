package claim

import (
	"fmt"
	"time"

	vo "warrantly/internal/domain/claim/valueobjects"
)

// NoteKind distinguishes operator-written notes from system-generated ones.
type NoteKind string

const (
	NoteKindComment      NoteKind = "comment"
	NoteKindStatusChange NoteKind = "status_change"
)

// Note is an audit entry on a claim. Status changes always carry a note; when
// the caller supplies no text, the engine synthesizes one. Transition notes
// keep the old and new status so the audit trail is queryable without parsing
// the body.
type Note struct {
	id        uint
	claimID   uint
	kind      NoteKind
	body      string
	oldStatus vo.Status
	newStatus vo.Status
	authorID  uint
	createdAt time.Time
}

func NewNote(body string, authorID uint) (*Note, error) {
	if body == "" {
		return nil, fmt.Errorf("note body is required")
	}
	return &Note{
		kind:      NoteKindComment,
		body:      body,
		authorID:  authorID,
		createdAt: time.Now(),
	}, nil
}

// NewStatusChangeNote records a transition. An empty body gets the synthesized
// "Status changed from X to Y" text; a supplied body is kept verbatim.
func NewStatusChangeNote(from, to vo.Status, body string, authorID uint) *Note {
	if body == "" {
		body = fmt.Sprintf("Status changed from %s to %s", from, to)
	}
	return &Note{
		kind:      NoteKindStatusChange,
		body:      body,
		oldStatus: from,
		newStatus: to,
		authorID:  authorID,
		createdAt: time.Now(),
	}
}

func ReconstructNote(id, claimID uint, kind NoteKind, body string, oldStatus, newStatus vo.Status, authorID uint, createdAt time.Time) (*Note, error) {
	if id == 0 {
		return nil, fmt.Errorf("note ID cannot be zero")
	}
	return &Note{
		id:        id,
		claimID:   claimID,
		kind:      kind,
		body:      body,
		oldStatus: oldStatus,
		newStatus: newStatus,
		authorID:  authorID,
		createdAt: createdAt,
	}, nil
}

func (n *Note) ID() uint { return n.id }

func (n *Note) ClaimID() uint { return n.claimID }

func (n *Note) Kind() NoteKind { return n.kind }

func (n *Note) Body() string { return n.body }

// StatusChanged reports whether this note records a lifecycle transition.
func (n *Note) StatusChanged() bool { return n.kind == NoteKindStatusChange }

func (n *Note) OldStatus() vo.Status { return n.oldStatus }

func (n *Note) NewStatus() vo.Status { return n.newStatus }

func (n *Note) AuthorID() uint { return n.authorID }

func (n *Note) CreatedAt() time.Time { return n.createdAt }

func (n *Note) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("note ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("note ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Note) AttachTo(claimID uint) {
	n.claimID = claimID
}
