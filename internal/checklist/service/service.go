// Package service orchestrates checklist reads and mutations for offboarding cases.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	accessrepo "itam-control-plane/internal/access/repository"
	assetrepo "itam-control-plane/internal/asset/repository"
	"itam-control-plane/internal/audit"
	"itam-control-plane/internal/checklist/domain"
	eventdomain "itam-control-plane/internal/eventlog/domain"
	eventrepo "itam-control-plane/internal/eventlog/repository"
	casedomain "itam-control-plane/internal/offboarding/domain"
	caserepo "itam-control-plane/internal/offboarding/repository"
	"itam-control-plane/internal/platform/apperror"
	"itam-control-plane/internal/platform/retry"
	"itam-control-plane/internal/telemetry"
)

// Service derives checklist state and progress for a case and records
// checklist mutations on its event log.
type Service struct {
	cases   caserepo.Repository
	events  eventrepo.Repository
	assets  assetrepo.Repository
	access  accessrepo.Repository
	retry   retry.Policy
	audit   audit.AuditLogger
	emitter telemetry.EventEmitter
	now     func() time.Time
}

// New returns a checklist Service. audit and emitter may be nil; then auditing
// and telemetry are skipped.
func New(
	cases caserepo.Repository,
	events eventrepo.Repository,
	assets assetrepo.Repository,
	access accessrepo.Repository,
	retryPolicy retry.Policy,
	auditLogger audit.AuditLogger,
	emitter telemetry.EventEmitter,
) *Service {
	return &Service{
		cases:   cases,
		events:  events,
		assets:  assets,
		access:  access,
		retry:   retryPolicy,
		audit:   auditLogger,
		emitter: emitter,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Checklist returns the projected checklist state and progress snapshot for the case.
// The state is always in template order; the snapshot folds in the user's pending
// asset returns and access revocations as outstanding tasks.
func (s *Service) Checklist(ctx context.Context, caseID string) (domain.State, domain.ProgressSnapshot, error) {
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return nil, domain.ProgressSnapshot{}, err
	}

	var entries []*eventdomain.Entry
	err = s.retry.Do(ctx, func() error {
		var lerr error
		entries, lerr = s.events.ListByCase(ctx, caseID)
		if lerr != nil {
			return apperror.StoreUnavailable("listing event log", lerr)
		}
		return nil
	})
	if err != nil {
		return nil, domain.ProgressSnapshot{}, err
	}

	var pendingAssets, pendingAccess int
	err = s.retry.Do(ctx, func() error {
		var lerr error
		pendingAssets, lerr = s.assets.PendingReturnCount(ctx, c.UserID)
		if lerr != nil {
			return apperror.StoreUnavailable("counting pending asset returns", lerr)
		}
		pendingAccess, lerr = s.access.PendingRevocationCount(ctx, c.UserID)
		if lerr != nil {
			return apperror.StoreUnavailable("counting pending access revocations", lerr)
		}
		return nil
	})
	if err != nil {
		return nil, domain.ProgressSnapshot{}, err
	}

	state := domain.Project(entries, domain.Template())
	snap, err := domain.ComputeProgress(state, pendingAssets, pendingAccess)
	if err != nil {
		return nil, domain.ProgressSnapshot{}, err
	}
	return state, snap, nil
}

// Mark appends a checklist-mark (completed=true) or checklist-unmark entry for
// the item. Un-marking never deletes history: the projection takes the latest
// entry per item as authoritative. Appends are not retried; a retried append
// would duplicate the entry, and duplicates are only cleaned up by CompactMarks.
func (s *Service) Mark(ctx context.Context, caseID, itemID, authorID string, completed bool, notes string) error {
	if _, ok := domain.TemplateItemByID(itemID); !ok {
		return apperror.InvalidInput("unknown checklist item %q", itemID)
	}
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return err
	}

	kind := eventdomain.KindChecklistMark
	if !completed {
		kind = eventdomain.KindChecklistUnmark
		notes = ""
	}
	payload, err := json.Marshal(eventdomain.ChecklistMark{ItemID: itemID, Completed: completed, Notes: notes})
	if err != nil {
		return apperror.Internal("encoding checklist payload", err)
	}
	entry := &eventdomain.Entry{
		ID:        uuid.New().String(),
		CaseID:    c.ID,
		AuthorID:  authorID,
		Kind:      kind,
		Payload:   payload,
		CreatedAt: s.now(),
	}
	if err := s.events.Append(ctx, entry); err != nil {
		return apperror.StoreUnavailable("appending checklist entry", err)
	}

	action := "checklist.mark"
	if !completed {
		action = "checklist.unmark"
	}
	if s.audit != nil {
		s.audit.LogEvent(ctx, authorID, action, fmt.Sprintf("cases/%s/%s", c.ID, itemID), fmt.Sprintf("completed=%t", completed))
	}
	event := telemetry.NewEvent("checklist_mark")
	event.CaseID = c.ID
	event.Department = c.Department
	event.ActorID = authorID
	event.Metadata = fmt.Sprintf(`{"item_id":%q,"completed":%t}`, itemID, completed)
	telemetry.EmitAsync(s.emitter, ctx, event)
	return nil
}

// CompactMarks removes superseded checklist entries for every template item of
// the case, keeping only the latest entry per item. Duplicate appends from
// retried mutations are harmless for the projection, so this is maintenance,
// not correctness.
func (s *Service) CompactMarks(ctx context.Context, caseID string) (int64, error) {
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return 0, err
	}

	var removed int64
	for _, item := range domain.Template() {
		n, err := s.events.DeleteSupersededChecklistMarks(ctx, c.ID, item.ID)
		if err != nil {
			return removed, apperror.StoreUnavailable("compacting checklist entries", err)
		}
		removed += n
	}
	if s.audit != nil {
		s.audit.LogEvent(ctx, audit.SentinelActorID, "checklist.compact", "cases/"+c.ID, fmt.Sprintf("removed=%d", removed))
	}
	return removed, nil
}

// loadCase fetches the case with read retry and maps missing rows to NotFound.
func (s *Service) loadCase(ctx context.Context, caseID string) (*casedomain.Case, error) {
	var c *casedomain.Case
	err := s.retry.Do(ctx, func() error {
		got, lerr := s.cases.GetByID(ctx, caseID)
		if lerr != nil {
			return apperror.StoreUnavailable("loading case", lerr)
		}
		c = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound("case %q not found", caseID)
	}
	return c, nil
}
