package api

import (
	"encoding/json"
	"net/http"

	"github.com/brainly-app/brainly/internal/store"
)

// ErrorResponse is the standard error body for every API failure.
type ErrorResponse struct {
	Error  string             `json:"error"`
	Code   string             `json:"code"`
	Fields []store.FieldError `json:"fields,omitempty"`
}

// writeError writes a JSON error response with the given HTTP status code.
func writeError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Code: code})
}

// writeValidationError writes a 400 carrying field-level detail.
func writeValidationError(w http.ResponseWriter, fields []store.FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ErrorResponse{Error: "validation failed", Code: "VALIDATION_ERROR", Fields: fields})
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
