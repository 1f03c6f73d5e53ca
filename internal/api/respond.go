// ABOUTME: JSON response helpers and the error envelope
// ABOUTME: Maps handler outcomes onto the HTTP error contract

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorResponse is the JSON envelope for all error replies.
// Details carries per-field validation messages and is omitted otherwise.
type errorResponse struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("encoding response", "error", err)
	}
}

// writeError sends a plain error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeInvalidInput sends a 400 with per-field validation details.
func writeInvalidInput(w http.ResponseWriter, details map[string][]string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid input", Details: details})
}

// writeInternal logs the failure and sends an opaque 500.
// Nothing about the underlying error reaches the client.
func writeInternal(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	logger.Error(action, "error", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
