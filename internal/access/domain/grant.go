// Package domain defines per-system access grants held by users.
package domain

import "time"

// Grant statuses. pending_revocation marks access queued for removal during
// offboarding; its count feeds case progress.
const (
	StatusActive            = "active"
	StatusPendingRevocation = "pending_revocation"
	StatusRevoked           = "revoked"
)

// Grant is one user's access to one named system.
type Grant struct {
	ID         string
	UserID     string
	SystemName string
	Status     string
	CreatedAt  time.Time
}
