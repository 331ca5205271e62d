// Package handler exposes the checklist REST endpoints.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"itam-control-plane/internal/checklist/domain"
	"itam-control-plane/internal/platform/apperror"
	"itam-control-plane/internal/platform/httpx"
)

// Service defines the checklist operations the handler exposes.
type Service interface {
	Checklist(ctx context.Context, caseID string) (domain.State, domain.ProgressSnapshot, error)
	Mark(ctx context.Context, caseID, itemID, authorID string, completed bool, notes string) error
	CompactMarks(ctx context.Context, caseID string) (int64, error)
}

// Handler handles checklist endpoints for offboarding cases.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a checklist Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register mounts the checklist routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/cases/{caseID}/checklist", h.handleGetChecklist)
	r.Post("/cases/{caseID}/checklist/compact", h.handleCompact)
	r.Post("/cases/{caseID}/checklist/{itemID}", h.handleMark)
}

type checklistResponse struct {
	Items    domain.State            `json:"items"`
	Progress domain.ProgressSnapshot `json:"progress"`
}

func (h *Handler) handleGetChecklist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID := chi.URLParam(r, "caseID")

	state, progress, err := h.service.Checklist(ctx, caseID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load checklist", "case_id", caseID, "error", err)
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, checklistResponse{Items: state, Progress: progress})
}

type markRequest struct {
	Completed bool   `json:"completed"`
	Notes     string `json:"notes"`
	AuthorID  string `json:"author_id"`
}

func (h *Handler) handleMark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID := chi.URLParam(r, "caseID")
	itemID := chi.URLParam(r, "itemID")

	var req markRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, apperror.InvalidInput("invalid request body"))
		return
	}

	if err := h.service.Mark(ctx, caseID, itemID, req.AuthorID, req.Completed, req.Notes); err != nil {
		if apperror.CodeOf(err) == apperror.CodeInvalidInput || apperror.CodeOf(err) == apperror.CodeNotFound {
			h.logger.WarnContext(ctx, "checklist mark rejected", "case_id", caseID, "item_id", itemID, "error", err)
		} else {
			h.logger.ErrorContext(ctx, "failed to mark checklist item", "case_id", caseID, "item_id", itemID, "error", err)
		}
		httpx.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type compactResponse struct {
	Removed int64 `json:"removed"`
}

func (h *Handler) handleCompact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID := chi.URLParam(r, "caseID")

	removed, err := h.service.CompactMarks(ctx, caseID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compact checklist entries", "case_id", caseID, "error", err)
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, compactResponse{Removed: removed})
}
