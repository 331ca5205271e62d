// Package handler exposes the anomaly remedy REST endpoint.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"itam-control-plane/internal/platform/apperror"
	"itam-control-plane/internal/platform/httpx"
)

// Service defines the anomaly operations the handler exposes.
type Service interface {
	RemedyFor(ctx context.Context, anomalyID string) (string, error)
}

// Handler serves remediation guidance for anomalies.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates an anomaly Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register mounts the anomaly routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/anomalies/{anomalyID}/remedy", h.handleRemedy)
}

type remedyResponse struct {
	Remedy string `json:"remedy"`
}

func (h *Handler) handleRemedy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	anomalyID := chi.URLParam(r, "anomalyID")

	remedy, err := h.service.RemedyFor(ctx, anomalyID)
	if err != nil {
		if apperror.CodeOf(err) == apperror.CodeNotFound {
			h.logger.WarnContext(ctx, "anomaly not found", "anomaly_id", anomalyID)
		} else {
			h.logger.ErrorContext(ctx, "failed to resolve remedy", "anomaly_id", anomalyID, "error", err)
		}
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, remedyResponse{Remedy: remedy})
}
