package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hikingbuddies/listings/internal/domain"
)

// ErrorDetail is the payload of every error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorDetail as {"error": {...}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

func errorBody(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the message because the handler knows what was
// being looked up.
func notFoundBody(message string) ErrorResponse {
	return errorBody("not_found", message)
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) ErrorResponse {
	return errorBody("validation_error", unwrapMessage(err))
}

// requestBody returns an ErrorResponse for input rejected before it reaches
// the service layer, such as a malformed query parameter.
func requestBody(message string) ErrorResponse {
	return errorBody("bad_request", message)
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.EventService.Create: validation error: fb link is required" → "fb link is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 && i+len(marker) < len(msg) {
		return msg[i+len(marker):]
	}
	return msg
}

// writeServiceError maps a service error onto a response. Sentinels become
// 404 or 422; anything else is logged and answered with a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, notFoundBody(notFound))
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
	}
}

var errMountainID = errors.New("mountain_id must be a UUID")
