package repository

import (
	"context"
	"database/sql"

	"itam-control-plane/internal/asset/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an asset repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// PendingReturnCount returns how many of the user's assets are awaiting return.
func (r *PostgresRepository) PendingReturnCount(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM assets
		WHERE assigned_user_id = $1 AND status = $2`,
		userID, domain.StatusPendingReturn).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}
