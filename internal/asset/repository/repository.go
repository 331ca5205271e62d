package repository

import "context"

// Repository defines the asset queries the offboarding core consumes.
type Repository interface {
	// PendingReturnCount returns how many of the user's assets are awaiting return.
	PendingReturnCount(ctx context.Context, userID string) (int, error)
}
