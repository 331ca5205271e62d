package repository

import (
	"context"
	"database/sql"
	"errors"

	"itam-control-plane/internal/offboarding/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a case repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID returns the case for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	var c domain.Case
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, department, site_id, status, created_at
		FROM offboarding_cases
		WHERE id = $1`, id).
		Scan(&c.ID, &c.UserID, &c.Department, &c.SiteID, &c.Status, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
