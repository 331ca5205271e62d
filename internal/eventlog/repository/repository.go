package repository

import (
	"context"

	"itam-control-plane/internal/eventlog/domain"
)

// Repository defines persistence for the append-only case event log.
type Repository interface {
	// ListByCase returns all entries for the case ordered by created_at ascending.
	ListByCase(ctx context.Context, caseID string) ([]*domain.Entry, error)
	// Append persists one entry. The entry must have ID set; it is not assigned by this method.
	Append(ctx context.Context, e *domain.Entry) error
	// DeleteSupersededChecklistMarks removes checklist-mark/unmark entries for
	// (caseID, itemID) other than the most recent one, returning the number of
	// rows removed. Used only by compaction; the projection never needs it.
	DeleteSupersededChecklistMarks(ctx context.Context, caseID, itemID string) (int64, error)
}
