// Package service resolves remediation guidance for anomaly records.
package service

import (
	"context"

	"itam-control-plane/internal/anomaly/domain"
	"itam-control-plane/internal/anomaly/repository"
	"itam-control-plane/internal/platform/apperror"
	"itam-control-plane/internal/platform/retry"
)

// Service answers remedy lookups for stored anomalies.
type Service struct {
	anomalies repository.Repository
	retry     retry.Policy
}

// New returns an anomaly Service.
func New(anomalies repository.Repository, retryPolicy retry.Policy) *Service {
	return &Service{anomalies: anomalies, retry: retryPolicy}
}

// RemedyFor loads the anomaly and resolves its remediation guidance. The
// record's operator-entered suggestion, when present, overrides the canonical
// remedy for its type.
func (s *Service) RemedyFor(ctx context.Context, anomalyID string) (string, error) {
	var rec *domain.Record
	err := s.retry.Do(ctx, func() error {
		got, lerr := s.anomalies.GetByID(ctx, anomalyID)
		if lerr != nil {
			return apperror.StoreUnavailable("loading anomaly", lerr)
		}
		rec = got
		return nil
	})
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", apperror.NotFound("anomaly %q not found", anomalyID)
	}
	return domain.Remedy(rec.Type, rec.Suggestion), nil
}
