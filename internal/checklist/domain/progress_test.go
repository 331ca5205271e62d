package domain

import (
	"testing"

	"itam-control-plane/internal/platform/apperror"
)

// stateWith builds a State over the real template with the given item ids completed.
func stateWith(completed ...string) State {
	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}
	var state State
	for _, item := range Template() {
		state = append(state, ItemState{Item: item, Completed: done[item.ID]})
	}
	return state
}

func allItemIDs() []string {
	var ids []string
	for _, item := range Template() {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestComputeProgress_AllChecklistDone(t *testing.T) {
	snap, err := ComputeProgress(stateWith(allItemIDs()...), 0, 0)
	if err != nil {
		t.Fatalf("ComputeProgress: %v", err)
	}
	if snap.ProgressPercent != 100 {
		t.Errorf("progress = %d, want 100", snap.ProgressPercent)
	}
	if snap.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", snap.Remaining)
	}
	if snap.RequiredCompleted != snap.RequiredTotal {
		t.Errorf("requiredCompleted = %d, want %d", snap.RequiredCompleted, snap.RequiredTotal)
	}
}

func TestComputeProgress_ZeroTotalIsComplete(t *testing.T) {
	snap, err := ComputeProgress(State{}, 0, 0)
	if err != nil {
		t.Fatalf("ComputeProgress: %v", err)
	}
	if snap.ProgressPercent != 100 {
		t.Errorf("progress = %d, want 100 for zero total", snap.ProgressPercent)
	}
	if snap.Total != 0 {
		t.Errorf("total = %d, want 0", snap.Total)
	}
}

func TestComputeProgress_PendingCountsExtendTotal(t *testing.T) {
	// 16 checklist items, 2 pending returns, 3 pending revocations: total 21.
	snap, err := ComputeProgress(stateWith(allItemIDs()...), 2, 3)
	if err != nil {
		t.Fatalf("ComputeProgress: %v", err)
	}
	if snap.Total != len(Template())+5 {
		t.Errorf("total = %d, want %d", snap.Total, len(Template())+5)
	}
	if snap.Completed != len(Template()) {
		t.Errorf("completed = %d, want %d (pending items are never completed)", snap.Completed, len(Template()))
	}
	// round(100*16/21) = round(76.19) = 76
	if snap.ProgressPercent != 76 {
		t.Errorf("progress = %d, want 76", snap.ProgressPercent)
	}
	if snap.Remaining != 5 {
		t.Errorf("remaining = %d, want 5", snap.Remaining)
	}
}

func TestComputeProgress_RequiredSubsetIgnoresPending(t *testing.T) {
	snap, err := ComputeProgress(stateWith("disable-directory-account", "archive-mailbox"), 4, 4)
	if err != nil {
		t.Fatalf("ComputeProgress: %v", err)
	}
	wantRequired := 0
	for _, item := range Template() {
		if item.Required {
			wantRequired++
		}
	}
	if snap.RequiredTotal != wantRequired {
		t.Errorf("requiredTotal = %d, want %d (pending counts excluded)", snap.RequiredTotal, wantRequired)
	}
	// Only disable-directory-account is required; archive-mailbox is not.
	if snap.RequiredCompleted != 1 {
		t.Errorf("requiredCompleted = %d, want 1", snap.RequiredCompleted)
	}
}

func TestComputeProgress_RejectsNegativeCounts(t *testing.T) {
	testCases := []struct {
		name           string
		assets, access int
	}{
		{"negative assets", -1, 0},
		{"negative access", 0, -2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeProgress(stateWith(), tc.assets, tc.access)
			if err == nil {
				t.Fatal("negative counts must be rejected")
			}
			if apperror.CodeOf(err) != apperror.CodeInvalidInput {
				t.Errorf("code = %q, want invalid_input", apperror.CodeOf(err))
			}
		})
	}
}

func TestComputeProgress_Rounding(t *testing.T) {
	// 1 of 3 done: round(33.33) = 33. 2 of 3: round(66.67) = 67.
	short := State{
		{Item: TemplateItem{ID: "a", Required: true}, Completed: true},
		{Item: TemplateItem{ID: "b"}},
		{Item: TemplateItem{ID: "c"}},
	}
	snap, err := ComputeProgress(short, 0, 0)
	if err != nil {
		t.Fatalf("ComputeProgress: %v", err)
	}
	if snap.ProgressPercent != 33 {
		t.Errorf("progress = %d, want 33", snap.ProgressPercent)
	}

	short[1].Completed = true
	snap, err = ComputeProgress(short, 0, 0)
	if err != nil {
		t.Fatalf("ComputeProgress: %v", err)
	}
	if snap.ProgressPercent != 67 {
		t.Errorf("progress = %d, want 67", snap.ProgressPercent)
	}
}
