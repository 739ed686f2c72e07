// Package httpjson writes the API's JSON response bodies and maps the
// error taxonomy onto HTTP status codes.
//
// The taxonomy (and mapping) is fixed:
//
//	validation / business-rule conflict → 400 {message}
//	forbidden (authenticated, not permitted) → 403 {message}
//	not found (missing or soft-deleted) → 404 {message}
//	internal → 500 {message, error}
//
// Soft-deleted entities are reported exactly like missing ones, so a 404
// never reveals whether a circle once existed. Internal details are
// logged via zap; the response carries only the error string.
package httpjson

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// errorBody is the error response shape: {message} or {message, error}.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Respond writes v as JSON with the given status.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a {message} error body with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	Respond(w, status, errorBody{Message: message})
}

// NotFound writes a 404 with the given message.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// Forbidden writes a 403 with the given message.
func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message)
}

// Validation writes a 400 with the given message. Business-rule
// conflicts (duplicate name, duplicate pending request, re-resolving a
// resolved request) use this same status per the API contract.
func Validation(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// ErrorLogger logs internal errors with request context and writes the
// 500 response body. Features hold one next to their zap logger.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// ServerError logs the failure (what we were doing, method, path) and
// writes a 500 {message, error} body.
func (e *ErrorLogger) ServerError(w http.ResponseWriter, r *http.Request, doing string, err error) {
	e.log.Error(doing,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	Respond(w, http.StatusInternalServerError, errorBody{
		Message: "Server error",
		Error:   err.Error(),
	})
}

// DecodeBody decodes a JSON request body into dst. Returns false (after
// writing a 400) when the body is malformed.
func DecodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		Validation(w, "Invalid request body")
		return false
	}
	return true
}
