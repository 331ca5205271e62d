package repository

import (
	"context"

	"itam-control-plane/internal/anomaly/domain"
)

// Repository defines persistence for anomaly records.
type Repository interface {
	// GetByID returns the anomaly for id, or nil if not found.
	GetByID(ctx context.Context, id string) (*domain.Record, error)
}
