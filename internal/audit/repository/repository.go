package repository

import (
	"context"

	"itam-control-plane/internal/audit/domain"
)

// Repository defines persistence for audit logs.
type Repository interface {
	Create(ctx context.Context, a *domain.AuditLog) error
	// List returns the newest audit logs, paginated by limit and offset.
	List(ctx context.Context, limit, offset int32) ([]*domain.AuditLog, error)
}
