package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"itam-control-plane/internal/checklist/domain"
	eventdomain "itam-control-plane/internal/eventlog/domain"
	casedomain "itam-control-plane/internal/offboarding/domain"
	"itam-control-plane/internal/platform/apperror"
	"itam-control-plane/internal/platform/retry"
)

type mockCaseRepo struct {
	byID    map[string]*casedomain.Case
	err     error
	failN   int
	getalls int
}

func (m *mockCaseRepo) GetByID(ctx context.Context, id string) (*casedomain.Case, error) {
	m.getalls++
	if m.failN > 0 {
		m.failN--
		return nil, errors.New("connection reset")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.byID[id], nil
}

type mockEventRepo struct {
	entries   []*eventdomain.Entry
	listErr   error
	appendErr error
	appended  []*eventdomain.Entry
	deleted   map[string]int64
	deleteErr error
}

func (m *mockEventRepo) ListByCase(ctx context.Context, caseID string) ([]*eventdomain.Entry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*eventdomain.Entry
	for _, e := range m.entries {
		if e.CaseID == caseID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEventRepo) Append(ctx context.Context, e *eventdomain.Entry) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appended = append(m.appended, e)
	return nil
}

func (m *mockEventRepo) DeleteSupersededChecklistMarks(ctx context.Context, caseID, itemID string) (int64, error) {
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	return m.deleted[itemID], nil
}

type mockAssetRepo struct {
	pending int
	err     error
}

func (m *mockAssetRepo) PendingReturnCount(ctx context.Context, userID string) (int, error) {
	return m.pending, m.err
}

type mockAccessRepo struct {
	pending int
	err     error
}

func (m *mockAccessRepo) PendingRevocationCount(ctx context.Context, userID string) (int, error) {
	return m.pending, m.err
}

type mockAudit struct {
	actions []string
}

func (m *mockAudit) LogEvent(ctx context.Context, actorID, action, resource, metadata string) {
	m.actions = append(m.actions, action)
}

func testPolicy() retry.Policy {
	return retry.Policy{MaxAttempts: 2, BaseDelay: time.Millisecond}
}

func markEntry(caseID, itemID string, completed bool, at time.Time) *eventdomain.Entry {
	kind := eventdomain.KindChecklistMark
	if !completed {
		kind = eventdomain.KindChecklistUnmark
	}
	payload, _ := json.Marshal(eventdomain.ChecklistMark{ItemID: itemID, Completed: completed})
	return &eventdomain.Entry{ID: itemID + at.String(), CaseID: caseID, Kind: kind, Payload: payload, CreatedAt: at}
}

func TestChecklistProjectsAndComputesProgress(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	cases := &mockCaseRepo{byID: map[string]*casedomain.Case{
		"case-1": {ID: "case-1", UserID: "user-1", Department: "engineering"},
	}}
	events := &mockEventRepo{entries: []*eventdomain.Entry{
		markEntry("case-1", "collect-laptop", true, base),
		markEntry("case-1", "revoke-vpn-access", true, base.Add(time.Minute)),
		markEntry("case-1", "revoke-vpn-access", false, base.Add(2*time.Minute)),
	}}
	svc := New(cases, events, &mockAssetRepo{pending: 2}, &mockAccessRepo{pending: 1}, testPolicy(), nil, nil)

	state, snap, err := svc.Checklist(context.Background(), "case-1")
	if err != nil {
		t.Fatalf("Checklist: %v", err)
	}
	if len(state) != len(domain.Template()) {
		t.Fatalf("expected %d items, got %d", len(domain.Template()), len(state))
	}
	for _, item := range state {
		switch item.Item.ID {
		case "collect-laptop":
			if !item.Completed {
				t.Errorf("collect-laptop should be completed")
			}
		case "revoke-vpn-access":
			if item.Completed {
				t.Errorf("revoke-vpn-access was un-marked, should be incomplete")
			}
		default:
			if item.Completed {
				t.Errorf("%s should be incomplete", item.Item.ID)
			}
		}
	}
	// 1 of 16 items done, plus 2 pending assets and 1 pending access task: 1/19.
	if snap.Total != 19 || snap.Completed != 1 {
		t.Fatalf("expected 1/19, got %d/%d", snap.Completed, snap.Total)
	}
	if snap.ProgressPercent != 5 {
		t.Fatalf("expected 5%%, got %d%%", snap.ProgressPercent)
	}
}

func TestChecklistCaseNotFound(t *testing.T) {
	svc := New(&mockCaseRepo{byID: map[string]*casedomain.Case{}}, &mockEventRepo{}, &mockAssetRepo{}, &mockAccessRepo{}, testPolicy(), nil, nil)
	_, _, err := svc.Checklist(context.Background(), "no-such-case")
	if apperror.CodeOf(err) != apperror.CodeNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestChecklistRetriesTransientCaseLoad(t *testing.T) {
	cases := &mockCaseRepo{
		byID:  map[string]*casedomain.Case{"case-1": {ID: "case-1", UserID: "user-1"}},
		failN: 1,
	}
	svc := New(cases, &mockEventRepo{}, &mockAssetRepo{}, &mockAccessRepo{}, testPolicy(), nil, nil)
	_, _, err := svc.Checklist(context.Background(), "case-1")
	if err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if cases.getalls != 2 {
		t.Fatalf("expected 2 attempts, got %d", cases.getalls)
	}
}

func TestChecklistStoreUnavailableAfterRetries(t *testing.T) {
	cases := &mockCaseRepo{err: errors.New("connection refused")}
	svc := New(cases, &mockEventRepo{}, &mockAssetRepo{}, &mockAccessRepo{}, testPolicy(), nil, nil)
	_, _, err := svc.Checklist(context.Background(), "case-1")
	if apperror.CodeOf(err) != apperror.CodeStoreUnavailable {
		t.Fatalf("expected store_unavailable, got %v", err)
	}
	if cases.getalls != 2 {
		t.Fatalf("expected 2 attempts, got %d", cases.getalls)
	}
}

func TestMarkAppendsEntry(t *testing.T) {
	cases := &mockCaseRepo{byID: map[string]*casedomain.Case{
		"case-1": {ID: "case-1", UserID: "user-1", Department: "finance"},
	}}
	events := &mockEventRepo{}
	audit := &mockAudit{}
	svc := New(cases, events, &mockAssetRepo{}, &mockAccessRepo{}, testPolicy(), audit, nil)

	if err := svc.Mark(context.Background(), "case-1", "collect-laptop", "op-1", true, "picked up at desk"); err != nil {
		t.Fatalf("Mark: %v", err)
	}
	if len(events.appended) != 1 {
		t.Fatalf("expected 1 appended entry, got %d", len(events.appended))
	}
	e := events.appended[0]
	if e.ID == "" {
		t.Errorf("entry ID not assigned")
	}
	if e.Kind != eventdomain.KindChecklistMark {
		t.Errorf("expected kind %q, got %q", eventdomain.KindChecklistMark, e.Kind)
	}
	if e.AuthorID != "op-1" {
		t.Errorf("expected author op-1, got %q", e.AuthorID)
	}
	if e.CreatedAt.Location() != time.UTC {
		t.Errorf("expected UTC timestamp")
	}
	payload, ok := e.ChecklistPayload()
	if !ok {
		t.Fatalf("payload not decodable")
	}
	if payload.ItemID != "collect-laptop" || !payload.Completed || payload.Notes != "picked up at desk" {
		t.Errorf("unexpected payload: %+v", payload)
	}
	if len(audit.actions) != 1 || audit.actions[0] != "checklist.mark" {
		t.Errorf("expected checklist.mark audit event, got %v", audit.actions)
	}
}

func TestMarkUnmarkClearsNotes(t *testing.T) {
	cases := &mockCaseRepo{byID: map[string]*casedomain.Case{"case-1": {ID: "case-1", UserID: "user-1"}}}
	events := &mockEventRepo{}
	svc := New(cases, events, &mockAssetRepo{}, &mockAccessRepo{}, testPolicy(), nil, nil)

	if err := svc.Mark(context.Background(), "case-1", "collect-laptop", "op-1", false, "should be dropped"); err != nil {
		t.Fatalf("Mark: %v", err)
	}
	e := events.appended[0]
	if e.Kind != eventdomain.KindChecklistUnmark {
		t.Errorf("expected kind %q, got %q", eventdomain.KindChecklistUnmark, e.Kind)
	}
	payload, ok := e.ChecklistPayload()
	if !ok {
		t.Fatalf("payload not decodable")
	}
	if payload.Completed || payload.Notes != "" {
		t.Errorf("unmark must clear completed and notes, got %+v", payload)
	}
}

func TestMarkUnknownItemRejected(t *testing.T) {
	cases := &mockCaseRepo{byID: map[string]*casedomain.Case{"case-1": {ID: "case-1"}}}
	events := &mockEventRepo{}
	svc := New(cases, events, &mockAssetRepo{}, &mockAccessRepo{}, testPolicy(), nil, nil)

	err := svc.Mark(context.Background(), "case-1", "shred-everything", "op-1", true, "")
	if apperror.CodeOf(err) != apperror.CodeInvalidInput {
		t.Fatalf("expected invalid_input, got %v", err)
	}
	if cases.getalls != 0 {
		t.Errorf("unknown item must be rejected before touching the store")
	}
	if len(events.appended) != 0 {
		t.Errorf("no entry must be appended for an unknown item")
	}
}

func TestMarkAppendFailureNotRetried(t *testing.T) {
	cases := &mockCaseRepo{byID: map[string]*casedomain.Case{"case-1": {ID: "case-1"}}}
	events := &mockEventRepo{appendErr: errors.New("write timeout")}
	svc := New(cases, events, &mockAssetRepo{}, &mockAccessRepo{}, testPolicy(), nil, nil)

	err := svc.Mark(context.Background(), "case-1", "collect-laptop", "op-1", true, "")
	if apperror.CodeOf(err) != apperror.CodeStoreUnavailable {
		t.Fatalf("expected store_unavailable, got %v", err)
	}
}

func TestCompactMarksSumsRemovals(t *testing.T) {
	cases := &mockCaseRepo{byID: map[string]*casedomain.Case{"case-1": {ID: "case-1"}}}
	events := &mockEventRepo{deleted: map[string]int64{
		"collect-laptop":    3,
		"revoke-vpn-access": 1,
	}}
	audit := &mockAudit{}
	svc := New(cases, events, &mockAssetRepo{}, &mockAccessRepo{}, testPolicy(), audit, nil)

	removed, err := svc.CompactMarks(context.Background(), "case-1")
	if err != nil {
		t.Fatalf("CompactMarks: %v", err)
	}
	if removed != 4 {
		t.Fatalf("expected 4 removed, got %d", removed)
	}
	if len(audit.actions) != 1 || audit.actions[0] != "checklist.compact" {
		t.Errorf("expected checklist.compact audit event, got %v", audit.actions)
	}
}

func TestCompactMarksCaseNotFound(t *testing.T) {
	svc := New(&mockCaseRepo{byID: map[string]*casedomain.Case{}}, &mockEventRepo{}, &mockAssetRepo{}, &mockAccessRepo{}, testPolicy(), nil, nil)
	_, err := svc.CompactMarks(context.Background(), "no-such-case")
	if apperror.CodeOf(err) != apperror.CodeNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
}
