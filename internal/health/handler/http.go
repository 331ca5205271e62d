// Package handler serves liveness and readiness probes for Kubernetes, load
// balancers, and CI.
package handler

import (
	"context"
	"net/http"
	"time"

	"itam-control-plane/internal/platform/httpx"
)

// Pinger reports whether the backing store is reachable (e.g. *sql.DB).
type Pinger interface {
	PingContext(ctx context.Context) error
}

// readyTimeout bounds the store ping so a hung connection cannot stall probes.
const readyTimeout = 2 * time.Second

// Handler serves the health endpoints.
type Handler struct {
	pinger Pinger
}

// New returns a health Handler. pinger may be nil; then readiness skips the store ping.
func New(pinger Pinger) *Handler {
	return &Handler{pinger: pinger}
}

type healthResponse struct {
	Status string `json:"status"`
}

// Live always reports ok while the process can serve requests.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// Ready reports ok when the store answers a ping within readyTimeout.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()
		if err := h.pinger.PingContext(ctx); err != nil {
			httpx.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "store unreachable"})
			return
		}
	}
	httpx.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
