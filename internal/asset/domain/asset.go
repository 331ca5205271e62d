// Package domain defines hardware assets tracked against users and departments.
package domain

import "time"

// Asset statuses. pending_return marks equipment awaiting collection during
// offboarding; its count feeds case progress.
const (
	StatusAssigned      = "assigned"
	StatusPendingReturn = "pending_return"
	StatusReturned      = "returned"
	StatusRetired       = "retired"
)

// Asset is one tracked piece of equipment.
type Asset struct {
	ID             string
	Tag            string
	Kind           string
	AssignedUserID string
	Department     string
	SiteID         string
	Status         string
	CreatedAt      time.Time
}
