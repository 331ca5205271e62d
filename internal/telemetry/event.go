// Package telemetry defines dashboard telemetry events and best-effort emission.
package telemetry

import "time"

// Event sources.
const (
	SourceServer = "itam-server"
)

// Event is one dashboard telemetry event (checklist mutation, health query).
// Serialized as JSON on the Kafka topic and parsed by the Loki worker.
type Event struct {
	EventType  string    `json:"event_type"`
	Source     string    `json:"source"`
	CaseID     string    `json:"case_id,omitempty"`
	Department string    `json:"department,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	Metadata   string    `json:"metadata,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewEvent returns an Event with Source and CreatedAt populated.
func NewEvent(eventType string) *Event {
	return &Event{
		EventType: eventType,
		Source:    SourceServer,
		CreatedAt: time.Now().UTC(),
	}
}
