package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the shape of every non-2xx JSON response.
type ErrorBody struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type successBody struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// Success responses
func JSON(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// OK acknowledges a write with {"success": true}.
func OK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, successBody{Success: true})
}

// File sends content as a download.
func File(w http.ResponseWriter, filename, contentType string, content []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		slog.Error("failed to write file response", slog.String("filename", filename), slog.Any("error", err))
	}
}

// Error responses
func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	writeJSON(w, http.StatusBadRequest, ErrorBody{
		Error:   message,
		Code:    "BAD_REQUEST",
		Details: details,
	})
}

func ValidationError(w http.ResponseWriter, details map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorBody{
		Error:   "Validation failed",
		Code:    "VALIDATION_ERROR",
		Details: details,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, ErrorBody{
		Error: message,
		Code:  "UNAUTHORIZED",
	})
}

func Forbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, ErrorBody{
		Error: message,
		Code:  "FORBIDDEN",
	})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorBody{
		Error: message,
		Code:  "NOT_FOUND",
	})
}

func Conflict(w http.ResponseWriter, code, message string) {
	writeJSON(w, http.StatusConflict, ErrorBody{
		Error: message,
		Code:  code,
	})
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, ErrorBody{
		Error: message,
		Code:  "INTERNAL_SERVER_ERROR",
	})
}
