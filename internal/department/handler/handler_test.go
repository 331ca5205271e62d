package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"itam-control-plane/internal/department/domain"
	"itam-control-plane/internal/platform/apperror"
)

type fakeService struct {
	agg      *domain.Aggregate
	err      error
	lastDept string
	lastSite string
}

func (f *fakeService) Health(ctx context.Context, department, siteID string) (*domain.Aggregate, error) {
	f.lastDept = department
	f.lastSite = siteID
	return f.agg, f.err
}

func newTestRouter(svc Service) http.Handler {
	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r
}

func TestGetHealth(t *testing.T) {
	svc := &fakeService{agg: &domain.Aggregate{
		Department:  "engineering",
		Counts:      domain.Counts{UserCount: 10, ActiveUserCount: 10, TotalAssets: 10},
		HealthScore: 100,
	}}
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/departments/engineering/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var agg domain.Aggregate
	if err := json.Unmarshal(rec.Body.Bytes(), &agg); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if agg.HealthScore != 100 || agg.Department != "engineering" {
		t.Fatalf("unexpected aggregate: %+v", agg)
	}
}

func TestGetHealthPassesSiteFilter(t *testing.T) {
	svc := &fakeService{agg: &domain.Aggregate{Department: "finance", SiteID: "site-1", HealthScore: 34}}
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/departments/finance/health?site_id=site-1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastDept != "finance" || svc.lastSite != "site-1" {
		t.Fatalf("service called with dept=%q site=%q", svc.lastDept, svc.lastSite)
	}
}

func TestGetHealthNotFound(t *testing.T) {
	svc := &fakeService{err: apperror.NotFound("department %q has no users or assets in the requested scope", "ghosts")}
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/departments/ghosts/health", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var env struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if env.Error != "not_found" {
		t.Fatalf("expected not_found, got %q", env.Error)
	}
}
