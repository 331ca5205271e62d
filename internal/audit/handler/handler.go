// Package handler exposes the audit log REST endpoint.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"itam-control-plane/internal/audit/domain"
	auditrepo "itam-control-plane/internal/audit/repository"
	"itam-control-plane/internal/platform/apperror"
	"itam-control-plane/internal/platform/httpx"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// Handler serves the audit trail, newest first.
type Handler struct {
	logger *slog.Logger
	repo   auditrepo.Repository
}

// New creates an audit Handler.
func New(repo auditrepo.Repository, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, repo: repo}
}

// Register mounts the audit routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/audit-logs", h.handleList)
}

type listResponse struct {
	Logs []*domain.AuditLog `json:"logs"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := queryInt(r, "limit", defaultLimit)
	if err != nil || limit < 1 {
		httpx.WriteError(w, apperror.InvalidInput("limit must be a positive integer"))
		return
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil || offset < 0 {
		httpx.WriteError(w, apperror.InvalidInput("offset must be a non-negative integer"))
		return
	}

	logs, err := h.repo.List(ctx, int32(limit), int32(offset))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list audit logs", "error", err)
		httpx.WriteError(w, apperror.StoreUnavailable("listing audit logs", err))
		return
	}
	if logs == nil {
		logs = []*domain.AuditLog{}
	}
	httpx.WriteJSON(w, http.StatusOK, listResponse{Logs: logs})
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
