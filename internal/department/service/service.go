// Package service computes department health aggregates on demand.
package service

import (
	"context"
	"fmt"

	"itam-control-plane/internal/department/domain"
	"itam-control-plane/internal/department/repository"
	"itam-control-plane/internal/platform/apperror"
	"itam-control-plane/internal/platform/retry"
	"itam-control-plane/internal/telemetry"
)

// Service derives the department health aggregate. Counts come from the store
// at read time; the aggregate is never persisted as an authoritative value.
type Service struct {
	counts  repository.Repository
	retry   retry.Policy
	emitter telemetry.EventEmitter
}

// New returns a department health Service. emitter may be nil.
func New(counts repository.Repository, retryPolicy retry.Policy, emitter telemetry.EventEmitter) *Service {
	return &Service{counts: counts, retry: retryPolicy, emitter: emitter}
}

// Health returns the health aggregate for the department, optionally scoped to
// one site. A scope with neither users nor assets is NotFound: an unknown
// department must be distinguishable from one that legitimately scores low.
func (s *Service) Health(ctx context.Context, department, siteID string) (*domain.Aggregate, error) {
	if department == "" {
		return nil, apperror.InvalidInput("department must not be empty")
	}

	var counts domain.Counts
	err := s.retry.Do(ctx, func() error {
		var lerr error
		counts, lerr = s.counts.FetchCounts(ctx, department, siteID)
		if lerr != nil {
			return apperror.StoreUnavailable("fetching department counts", lerr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if counts.UserCount == 0 && counts.TotalAssets == 0 {
		return nil, apperror.NotFound("department %q has no users or assets in the requested scope", department)
	}

	score, err := domain.HealthScore(counts)
	if err != nil {
		return nil, err
	}

	event := telemetry.NewEvent("department_health_query")
	event.Department = department
	event.Metadata = fmt.Sprintf(`{"site_id":%q,"score":%d}`, siteID, score)
	telemetry.EmitAsync(s.emitter, ctx, event)

	return &domain.Aggregate{
		Department:  department,
		SiteID:      siteID,
		Counts:      counts,
		HealthScore: score,
	}, nil
}
