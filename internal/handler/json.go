package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// ErrorMessage is the uniform body returned for request-scoped failures.
type ErrorMessage struct {
	Timestamp time.Time `json:"timestamp"`
	Code      int       `json:"code"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	URI       string    `json:"uri"`
	Method    string    `json:"method"`
}

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeErrorMessage sends the uniform error body for the given status.
func writeErrorMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, ErrorMessage{
		Timestamp: time.Now().UTC(),
		Code:      status,
		Status:    http.StatusText(status),
		Message:   message,
		URI:       r.URL.Path,
		Method:    r.Method,
	})
}

// readJSON decodes the request body into the given destination.
func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
