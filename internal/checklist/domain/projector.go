package domain

import (
	"time"

	eventdomain "itam-control-plane/internal/eventlog/domain"
)

// ItemState is one template item overlaid with its completion state.
type ItemState struct {
	Item        TemplateItem `json:"item"`
	Completed   bool         `json:"completed"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	Notes       string       `json:"notes,omitempty"`
}

// State is the derived checklist for a case, always in template order.
type State []ItemState

// Project folds the case's event log against the template and returns the
// current checklist state. The latest checklist-mark or checklist-unmark entry
// per item id is authoritative; entries for unknown item ids are ignored so the
// template can evolve without migrating historical data. Pure: the same log
// always yields the same state.
func Project(entries []*eventdomain.Entry, template []TemplateItem) State {
	type latest struct {
		mark eventdomain.ChecklistMark
		at   time.Time
	}
	byItem := make(map[string]latest, len(template))
	for _, e := range entries {
		m, ok := e.ChecklistPayload()
		if !ok {
			continue
		}
		prev, seen := byItem[m.ItemID]
		// Entries arrive in created_at order, but dedup must not depend on it.
		if !seen || !e.CreatedAt.Before(prev.at) {
			byItem[m.ItemID] = latest{mark: m, at: e.CreatedAt}
		}
	}

	state := make(State, 0, len(template))
	for _, item := range template {
		s := ItemState{Item: item}
		if l, ok := byItem[item.ID]; ok && l.mark.Completed {
			at := l.at
			s.Completed = true
			s.CompletedAt = &at
			s.Notes = l.mark.Notes
		}
		state = append(state, s)
	}
	return state
}
