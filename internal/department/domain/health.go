// Package domain holds department health aggregation and scoring.
package domain

import (
	"math"

	"itam-control-plane/internal/platform/apperror"
)

// Counts are the raw per-department figures the health score is derived from.
type Counts struct {
	UserCount        int `json:"user_count"`
	ActiveUserCount  int `json:"active_user_count"`
	TotalAssets      int `json:"total_assets"`
	OpenAnomalyCount int `json:"open_anomaly_count"`
}

// Aggregate is the department health view served by the API. SiteID is empty
// when the aggregate spans all sites.
type Aggregate struct {
	Department  string `json:"department"`
	SiteID      string `json:"site_id,omitempty"`
	Counts      Counts `json:"counts"`
	HealthScore int    `json:"health_score"`
}

// anomalyPenaltyCap bounds how much open anomalies can drag the score down.
const anomalyPenaltyCap = 30

// HealthScore blends asset coverage (40%), user activity (40%), and an
// anomaly penalty (20%) into a 0-100 score. Asset coverage is assets per user
// uncapped before blending, so asset-heavy departments can offset a weak
// activity ratio; the final score is clamped. Negative counts are rejected.
func HealthScore(c Counts) (int, error) {
	if c.UserCount < 0 || c.ActiveUserCount < 0 || c.TotalAssets < 0 || c.OpenAnomalyCount < 0 {
		return 0, apperror.InvalidInput("department counts must not be negative: %+v", c)
	}

	var assetCompliance float64
	if c.TotalAssets > 0 {
		users := c.UserCount
		if users < 1 {
			users = 1
		}
		assetCompliance = float64(c.TotalAssets) / float64(users) * 100
	}

	var userActivity float64
	if c.UserCount > 0 {
		userActivity = float64(c.ActiveUserCount) / float64(c.UserCount) * 100
	}

	penalty := float64(c.OpenAnomalyCount * 5)
	if penalty > anomalyPenaltyCap {
		penalty = anomalyPenaltyCap
	}

	score := math.Round(0.4*assetCompliance + 0.4*userActivity + 0.2*(100-penalty))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(score), nil
}
