// Package handler exposes the department health REST endpoint.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"itam-control-plane/internal/department/domain"
	"itam-control-plane/internal/platform/apperror"
	"itam-control-plane/internal/platform/httpx"
)

// Service defines the department operations the handler exposes.
type Service interface {
	Health(ctx context.Context, department, siteID string) (*domain.Aggregate, error)
}

// Handler serves department health aggregates.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a department Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register mounts the department routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/departments/{department}/health", h.handleHealth)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	department := chi.URLParam(r, "department")
	siteID := r.URL.Query().Get("site_id")

	agg, err := h.service.Health(ctx, department, siteID)
	if err != nil {
		if apperror.CodeOf(err) == apperror.CodeNotFound {
			h.logger.WarnContext(ctx, "department health scope not found", "department", department, "site_id", siteID)
		} else {
			h.logger.ErrorContext(ctx, "failed to compute department health", "department", department, "error", err)
		}
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, agg)
}
