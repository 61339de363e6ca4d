// Package httpx holds the JSON response helpers shared by handlers and
// middleware.
package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fittrack/fittrack-api/internal/apperr"
)

// ErrorBody is the error envelope: a human-readable message plus the
// offending field name for field-specific validation failures.
type ErrorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorBody{Message: msg})
}

// WriteError maps a taxonomy error to its status and body. Anything
// unexpected is logged and collapsed to a generic 500.
func WriteError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "err", err)
	}
	msg, field := apperr.Client(err)
	WriteJSON(w, status, ErrorBody{Message: msg, Field: field})
}
