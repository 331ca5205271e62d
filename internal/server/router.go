// Package server wires the HTTP API: routes, middleware, and probes.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	anomalyhandler "itam-control-plane/internal/anomaly/handler"
	audithandler "itam-control-plane/internal/audit/handler"
	auditrepo "itam-control-plane/internal/audit/repository"
	checklisthandler "itam-control-plane/internal/checklist/handler"
	departmenthandler "itam-control-plane/internal/department/handler"
	healthhandler "itam-control-plane/internal/health/handler"
	"itam-control-plane/internal/telemetry"
)

// requestTimeout bounds every API request end to end.
const requestTimeout = 30 * time.Second

// Deps holds the handler dependencies for the HTTP router.
type Deps struct {
	Logger     *slog.Logger
	Checklist  checklisthandler.Service
	Department departmenthandler.Service
	Anomaly    anomalyhandler.Service
	// AuditRepo backs GET /api/v1/audit-logs. If nil, the route is not registered.
	AuditRepo auditrepo.Repository
	// Pinger backs the readiness probe (e.g. *sql.DB). If nil, readiness skips the store ping.
	Pinger healthhandler.Pinger
	// Emitter receives per-request telemetry events. If nil, request telemetry is disabled.
	Emitter telemetry.EventEmitter
}

// NewRouter builds the chi router with all API routes and middleware.
//
// Route → handler mapping:
//   - /api/v1/cases/{caseID}/checklist...      → internal/checklist/handler
//   - /api/v1/departments/{department}/health  → internal/department/handler
//   - /api/v1/anomalies/{anomalyID}/remedy     → internal/anomaly/handler
//   - /api/v1/audit-logs                       → internal/audit/handler
//   - /healthz, /readyz                        → internal/health/handler
//   - /metrics                                 → prometheus
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(deps.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))
	r.Use(metrics)
	r.Use(tracing)
	r.Use(requestTelemetry(deps.Emitter, map[string]bool{
		"/healthz": true,
		"/readyz":  true,
		"/metrics": true,
	}))

	health := healthhandler.New(deps.Pinger)
	r.Get("/healthz", health.Live)
	r.Get("/readyz", health.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		checklisthandler.New(deps.Checklist, deps.Logger).Register(api)
		departmenthandler.New(deps.Department, deps.Logger).Register(api)
		anomalyhandler.New(deps.Anomaly, deps.Logger).Register(api)
		if deps.AuditRepo != nil {
			audithandler.New(deps.AuditRepo, deps.Logger).Register(api)
		}
	})

	return r
}
