package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rezkam/hostitask/internal/domain"
	"github.com/rezkam/hostitask/internal/i18n"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []ErrorField `json:"details"`
}

// ErrorField describes a field-specific error.
type ErrorField struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// BadRequest sends a 400 Bad Request error.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, "INVALID_REQUEST", message, http.StatusBadRequest)
}

// ValidationError sends a 400 validation error for a single field.
func ValidationError(w http.ResponseWriter, field, issue string) {
	ValidationErrors(w, []ErrorField{{Field: field, Issue: issue}})
}

// ValidationErrors sends a 400 validation error listing every offending field.
func ValidationErrors(w http.ResponseWriter, fields []ErrorField) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:    "VALIDATION_ERROR",
			Message: "validation failed",
			Details: fields,
		},
	})
}

// NotFound sends a 404 Not Found error.
func NotFound(w http.ResponseWriter, resource string) {
	Error(w, "NOT_FOUND", resource+" not found", http.StatusNotFound)
}

// InvalidTransition sends a 409 Conflict for a lifecycle move the task's status does not allow.
func InvalidTransition(w http.ResponseWriter, message string) {
	Error(w, "INVALID_TRANSITION", message, http.StatusConflict)
}

// InternalError sends a 500 Internal Server Error.
// The error is logged server-side; the client only sees a generic message.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		slog.ErrorContext(r.Context(), "Internal server error", "error", err)
	}
	Error(w, "INTERNAL_ERROR", "an internal error occurred", http.StatusInternalServerError)
}

// Error sends a generic error response.
func Error(w http.ResponseWriter, code, message string, statusCode int) {
	writeJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: []ErrorField{},
		},
	})
}

// FromDomainError maps domain errors to HTTP responses.
// Field issues are written in the request language (see i18n.NewContext).
func FromDomainError(w http.ResponseWriter, r *http.Request, err error) {
	lang := i18n.FromContext(r.Context())
	invalid := func(field, key string) {
		ValidationError(w, field, i18n.Label(lang, key))
	}

	switch {
	// Validation errors (400)
	case errors.Is(err, domain.ErrDescriptionRequired):
		invalid("description", i18n.KeyIssueRequired)
	case errors.Is(err, domain.ErrGuestContactRequired):
		invalid("guest_contact", i18n.KeyIssueRequired)
	case errors.Is(err, domain.ErrStaffNameRequired):
		invalid("staff_name", i18n.KeyIssueRequired)
	case errors.Is(err, domain.ErrInvalidEstimatedTime):
		invalid("estimated_time", i18n.KeyIssueEstimatedTime)
	case errors.Is(err, domain.ErrInvalidDepartment):
		invalid("department", i18n.KeyIssueDepartment)
	case errors.Is(err, domain.ErrInvalidUrgency):
		invalid("urgency", i18n.KeyIssueUrgency)
	case errors.Is(err, domain.ErrInvalidTaskStatus):
		invalid("status", i18n.KeyIssueStatus)
	case errors.Is(err, domain.ErrInvalidSortKey):
		invalid("sort", i18n.KeyIssueSort)
	case errors.Is(err, domain.ErrInvalidLanguage):
		invalid("lang", i18n.KeyIssueLang)
	case errors.Is(err, domain.ErrEmptyMessage):
		invalid("text", i18n.KeyIssueRequired)
	case errors.Is(err, domain.ErrValidation):
		BadRequest(w, err.Error())

	// Not found errors (404)
	case errors.Is(err, domain.ErrTaskNotFound):
		NotFound(w, "task")
	case errors.Is(err, domain.ErrChatSessionNotFound):
		NotFound(w, "chat session")

	// Lifecycle errors (409)
	case errors.Is(err, domain.ErrInvalidTransition):
		InvalidTransition(w, err.Error())

	// Unknown errors (500) - Log server-side, return generic message to client
	default:
		InternalError(w, r, err)
	}
}
