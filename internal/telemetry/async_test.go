package telemetry

import (
	"context"
	"sync"
	"testing"
	"time"
)

// mockEventEmitter implements EventEmitter for tests.
type mockEventEmitter struct {
	mu      sync.Mutex
	events  []*Event
	emitErr error
}

func (m *mockEventEmitter) Emit(ctx context.Context, event *Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return m.emitErr
}

func (m *mockEventEmitter) getEvents() []*Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.events
}

func TestEmitAsync_NilEmitter(t *testing.T) {
	// Should not panic.
	EmitAsync(nil, context.Background(), NewEvent("checklist_mark"))
}

func TestEmitAsync_NilEvent(t *testing.T) {
	emitter := &mockEventEmitter{}
	EmitAsync(emitter, context.Background(), nil)

	time.Sleep(10 * time.Millisecond)
	if n := len(emitter.getEvents()); n != 0 {
		t.Errorf("expected 0 events, got %d", n)
	}
}

func TestEmitAsync_SuccessfulEmit(t *testing.T) {
	emitter := &mockEventEmitter{}
	event := NewEvent("checklist_mark")
	event.CaseID = "case-1"
	event.ActorID = "operator-1"

	EmitAsync(emitter, context.Background(), event)

	time.Sleep(100 * time.Millisecond)
	events := emitter.getEvents()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].CaseID != "case-1" {
		t.Errorf("case_id = %q, want %q", events[0].CaseID, "case-1")
	}
	if events[0].EventType != "checklist_mark" {
		t.Errorf("event_type = %q, want %q", events[0].EventType, "checklist_mark")
	}
	if events[0].Source != SourceServer {
		t.Errorf("source = %q, want %q", events[0].Source, SourceServer)
	}
}

func TestEmitAsync_UsesBackgroundContext(t *testing.T) {
	emitter := &mockEventEmitter{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel the request context immediately

	EmitAsync(emitter, ctx, NewEvent("health_query"))

	time.Sleep(100 * time.Millisecond)
	if n := len(emitter.getEvents()); n != 1 {
		t.Errorf("expected 1 event (context.Background used), got %d", n)
	}
}

func TestEmitAsync_ErrorHandling(t *testing.T) {
	emitter := &mockEventEmitter{emitErr: context.DeadlineExceeded}

	// The error is logged but must not affect the caller.
	EmitAsync(emitter, context.Background(), NewEvent("checklist_mark"))
	time.Sleep(100 * time.Millisecond)
}
