package handler

import (
	"encoding/json"
	"net/http"

	"resume-search/internal/domain"
	apperrors "resume-search/pkg/errors"
)

// writeJSON writes a JSON response (helper function)
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError maps err to its HTTP status and logs server-side failures.
func writeAppError(w http.ResponseWriter, r *http.Request, logger domain.Logger, err error) {
	status := apperrors.GetStatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", err, "path", r.URL.Path, "request_id", RequestIDFromContext(r.Context()))
	} else {
		logger.Warn("Request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	writeError(w, status, apperrors.Message(err))
}
