package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"labs/internal/middleware"
	"labs/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("error", message).
		Int("status", status).
		Str("path", r.URL.Path).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:     message,
		RequestID: middleware.RequestIDFromContext(r.Context()),
	})
}

// writeDomainError maps service errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		logger.Error().Err(err).Msg("unexpected service error")
		domainErr = model.ErrInternal
	}

	status := http.StatusBadRequest
	switch domainErr.Code {
	case model.ErrCodeProductNotFound, model.ErrCodeRouteNotFound:
		status = http.StatusNotFound
	case model.ErrCodeMethodNotAllowed:
		status = http.StatusMethodNotAllowed
	case model.ErrCodeInternalError:
		status = http.StatusInternalServerError
	}

	writeError(w, r, status, domainErr.Message, logger)
}

// NotFound handles requests that match no route.
func NotFound(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeDomainError(w, r, model.ErrRouteNotFound, logger)
	}
}

// MethodNotAllowed handles requests to a known path with an unsupported method.
func MethodNotAllowed(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeDomainError(w, r, model.ErrMethodNotAllowed, logger)
	}
}
