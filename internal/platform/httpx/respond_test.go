package httpx

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"itam-control-plane/internal/platform/apperror"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, 201, map[string]int{"removed": 4})

	if rec.Code != 201 {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}
	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["removed"] != 4 {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestWriteErrorMapsTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", apperror.NotFound("case %q not found", "c1"), 404, "not_found"},
		{"invalid input", apperror.InvalidInput("bad item"), 400, "invalid_input"},
		{"store unavailable", apperror.StoreUnavailable("db down", errors.New("refused")), 503, "store_unavailable"},
		{"unclassified", errors.New("boom"), 500, "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			var env ErrorEnvelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decoding envelope: %v", err)
			}
			if env.Error != tt.wantCode {
				t.Fatalf("expected code %q, got %q", tt.wantCode, env.Error)
			}
			if env.Message == "" {
				t.Fatalf("message must not be empty")
			}
		})
	}
}
