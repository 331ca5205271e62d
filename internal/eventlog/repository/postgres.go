package repository

import (
	"context"
	"database/sql"

	"itam-control-plane/internal/eventlog/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an event log repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByCase returns all entries for the case ordered by created_at ascending.
// It returns an error only for database failures; a case with no entries yields an empty slice.
func (r *PostgresRepository) ListByCase(ctx context.Context, caseID string) ([]*domain.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, case_id, author_id, kind, payload, created_at
		FROM event_log
		WHERE case_id = $1
		ORDER BY created_at ASC, id ASC`, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.ID, &e.CaseID, &e.AuthorID, &e.Kind, &e.Payload, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// Append persists the entry. The entry must have ID and CreatedAt set.
func (r *PostgresRepository) Append(ctx context.Context, e *domain.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO event_log (id, case_id, author_id, kind, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.CaseID, e.AuthorID, e.Kind, []byte(e.Payload), e.CreatedAt)
	return err
}

// DeleteSupersededChecklistMarks removes all checklist entries for (caseID, itemID)
// except the most recent one. Duplicate appends from retries are harmless for the
// projection, so this runs only as explicit maintenance.
func (r *PostgresRepository) DeleteSupersededChecklistMarks(ctx context.Context, caseID, itemID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM event_log
		WHERE case_id = $1
		  AND kind IN ($2, $3)
		  AND payload->>'item_id' = $4
		  AND id <> (
			SELECT id FROM event_log
			WHERE case_id = $1 AND kind IN ($2, $3) AND payload->>'item_id' = $4
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		  )`,
		caseID, domain.KindChecklistMark, domain.KindChecklistUnmark, itemID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
