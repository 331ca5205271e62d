package repository

import (
	"context"
	"database/sql"
	"errors"

	"itam-control-plane/internal/anomaly/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an anomaly repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID returns the anomaly for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	var rec domain.Record
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, type, description, suggestion, severity, status, created_at
		FROM anomalies
		WHERE id = $1`, id).
		Scan(&rec.ID, &rec.UserID, &rec.Type, &rec.Description, &rec.Suggestion, &rec.Severity, &rec.Status, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
