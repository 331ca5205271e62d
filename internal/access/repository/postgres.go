package repository

import (
	"context"
	"database/sql"

	"itam-control-plane/internal/access/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an access-grant repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// PendingRevocationCount returns how many of the user's grants are queued for revocation.
func (r *PostgresRepository) PendingRevocationCount(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM access_grants
		WHERE user_id = $1 AND status = $2`,
		userID, domain.StatusPendingRevocation).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}
