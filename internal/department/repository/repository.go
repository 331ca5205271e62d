package repository

import (
	"context"

	"itam-control-plane/internal/department/domain"
)

// Repository defines the count queries health scoring consumes.
type Repository interface {
	// FetchCounts returns live counts for the department, optionally scoped to
	// one site (siteID empty means all sites). Counts are computed at read time
	// and never cached.
	FetchCounts(ctx context.Context, department, siteID string) (domain.Counts, error)
}
