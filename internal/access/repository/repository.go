package repository

import "context"

// Repository defines the access-grant queries the offboarding core consumes.
type Repository interface {
	// PendingRevocationCount returns how many of the user's grants are queued for revocation.
	PendingRevocationCount(ctx context.Context, userID string) (int, error)
}
