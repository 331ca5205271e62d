package domain

import (
	"math"

	"itam-control-plane/internal/platform/apperror"
)

// ProgressSnapshot summarizes case completion. Outstanding asset returns and
// access revocations count as additional tasks alongside the fixed checklist,
// weighting physical and IT cleanup equally with checklist work.
type ProgressSnapshot struct {
	Total             int `json:"total"`
	Completed         int `json:"completed"`
	Remaining         int `json:"remaining"`
	ProgressPercent   int `json:"progress_percent"`
	RequiredTotal     int `json:"required_total"`
	RequiredCompleted int `json:"required_completed"`
}

// ComputeProgress derives a ProgressSnapshot from the projected checklist state
// plus live pending counts. Negative counts are rejected; a case with no
// outstanding work at all is 100% complete by definition.
func ComputeProgress(state State, pendingAssetCount, pendingAccessCount int) (ProgressSnapshot, error) {
	if pendingAssetCount < 0 {
		return ProgressSnapshot{}, apperror.InvalidInput("pending asset count must not be negative, got %d", pendingAssetCount)
	}
	if pendingAccessCount < 0 {
		return ProgressSnapshot{}, apperror.InvalidInput("pending access count must not be negative, got %d", pendingAccessCount)
	}

	snap := ProgressSnapshot{
		Total: len(state) + pendingAssetCount + pendingAccessCount,
	}
	for _, s := range state {
		if s.Completed {
			snap.Completed++
		}
		if s.Item.Required {
			snap.RequiredTotal++
			if s.Completed {
				snap.RequiredCompleted++
			}
		}
	}
	snap.Remaining = snap.Total - snap.Completed

	if snap.Total == 0 {
		snap.ProgressPercent = 100
	} else {
		snap.ProgressPercent = int(math.Round(100 * float64(snap.Completed) / float64(snap.Total)))
	}
	return snap, nil
}
