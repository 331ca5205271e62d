// Package audit records operator actions (checklist marks, compaction) as a
// best-effort audit trail for the dashboard.
package audit

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"itam-control-plane/internal/audit/domain"
	auditrepo "itam-control-plane/internal/audit/repository"
)

// SentinelActorID is the actor_id used for audit events with no known operator
// (e.g. scheduled compaction).
const SentinelActorID = "_system"

// AuditLogger writes a single audit event with explicit action/resource.
// LogEvent is best-effort: failures are logged and do not affect the caller.
type AuditLogger interface {
	LogEvent(ctx context.Context, actorID, action, resource, metadata string)
}

// Logger implements AuditLogger using the audit repository.
type Logger struct {
	repo auditrepo.Repository
}

// NewLogger returns an AuditLogger that persists to repo. repo may be nil; then LogEvent is a no-op.
func NewLogger(repo auditrepo.Repository) *Logger {
	return &Logger{repo: repo}
}

// LogEvent writes one audit log entry. Best-effort: errors are logged and not returned.
func (l *Logger) LogEvent(ctx context.Context, actorID, action, resource, metadata string) {
	if l.repo == nil {
		return
	}
	if actorID == "" {
		actorID = SentinelActorID
	}
	entry := &domain.AuditLog{
		ID:        uuid.New().String(),
		ActorID:   actorID,
		Action:    action,
		Resource:  resource,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}
	if err := l.repo.Create(ctx, entry); err != nil {
		log.Printf("audit: failed to log event %s/%s: %v", action, resource, err)
	}
}
