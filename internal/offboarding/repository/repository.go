package repository

import (
	"context"

	"itam-control-plane/internal/offboarding/domain"
)

// Repository defines persistence for offboarding cases.
type Repository interface {
	// GetByID returns the case for id, or nil if not found.
	GetByID(ctx context.Context, id string) (*domain.Case, error)
}
