// Package httpx holds shared HTTP response helpers for the API handlers.
package httpx

import (
	"encoding/json"
	"log"
	"net/http"

	"itam-control-plane/internal/platform/apperror"
)

// ErrorEnvelope is the JSON body for every non-2xx API response.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("httpx: failed to encode response: %v", err)
	}
}

// WriteError maps err through the apperror taxonomy and writes the error envelope.
func WriteError(w http.ResponseWriter, err error) {
	code := apperror.CodeOf(err)
	WriteJSON(w, apperror.ToHTTPStatus(code), ErrorEnvelope{
		Error:   string(code),
		Message: apperror.MessageOf(err),
	})
}
