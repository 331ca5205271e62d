package repository

import (
	"context"
	"database/sql"

	"itam-control-plane/internal/department/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a department counts repository backed by db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FetchCounts aggregates users, assets, and unresolved anomalies for the
// department in one round trip. Anomalies carry no department of their own, so
// they are attributed through the owning user. An anomaly counts as open while
// its status is OPEN or IN_PROGRESS.
func (r *PostgresRepository) FetchCounts(ctx context.Context, department, siteID string) (domain.Counts, error) {
	var c domain.Counts
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users u
			 WHERE u.department = $1 AND ($2 = '' OR u.site_id = $2)),
			(SELECT COUNT(*) FROM users u
			 WHERE u.department = $1 AND ($2 = '' OR u.site_id = $2) AND u.active),
			(SELECT COUNT(*) FROM assets a
			 WHERE a.department = $1 AND ($2 = '' OR a.site_id = $2)),
			(SELECT COUNT(*) FROM anomalies an
			 JOIN users u ON u.id = an.user_id
			 WHERE u.department = $1 AND ($2 = '' OR u.site_id = $2)
			   AND an.status IN ('OPEN', 'IN_PROGRESS'))`,
		department, siteID,
	).Scan(&c.UserCount, &c.ActiveUserCount, &c.TotalAssets, &c.OpenAnomalyCount)
	if err != nil {
		return domain.Counts{}, err
	}
	return c, nil
}
