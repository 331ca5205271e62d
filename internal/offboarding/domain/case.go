// Package domain defines the offboarding case, the workflow record that owns
// a checklist and an event log.
package domain

import "time"

// Case statuses. Cases stay open until every required checklist item is done
// and the exit record is filed; closing is an explicit operator action.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Case is an offboarding workflow record for one user.
type Case struct {
	ID         string
	UserID     string
	Department string
	SiteID     string
	Status     string
	CreatedAt  time.Time
}
