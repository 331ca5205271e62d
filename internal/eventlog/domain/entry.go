// Package domain defines the append-only event log attached to offboarding cases.
package domain

import (
	"encoding/json"
	"time"
)

// Entry kinds understood by the checklist projection. Other kinds are opaque
// to this subsystem and pass through the log untouched.
const (
	KindChecklistMark   = "checklist-mark"
	KindChecklistUnmark = "checklist-unmark"
)

// Entry is one timestamped, typed record in a case's event log.
// Entries are never mutated or reordered after append.
type Entry struct {
	ID        string
	CaseID    string
	AuthorID  string
	Kind      string
	Payload   json.RawMessage
	CreatedAt time.Time
}

// ChecklistMark is the payload for KindChecklistMark and KindChecklistUnmark
// entries. For unmark entries Completed is false and Notes is empty.
type ChecklistMark struct {
	ItemID    string `json:"item_id"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes,omitempty"`
}

// ChecklistPayload decodes the entry payload as a ChecklistMark.
// Returns false when the entry is not a checklist kind or the payload does not
// parse; callers skip such entries rather than failing the projection.
func (e *Entry) ChecklistPayload() (ChecklistMark, bool) {
	if e.Kind != KindChecklistMark && e.Kind != KindChecklistUnmark {
		return ChecklistMark{}, false
	}
	var m ChecklistMark
	if err := json.Unmarshal(e.Payload, &m); err != nil {
		return ChecklistMark{}, false
	}
	if m.ItemID == "" {
		return ChecklistMark{}, false
	}
	if e.Kind == KindChecklistUnmark {
		m.Completed = false
		m.Notes = ""
	}
	return m, true
}
