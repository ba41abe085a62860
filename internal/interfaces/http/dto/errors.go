package dto

import (
	"net/http"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body returned for request-level failures such
// as a missing resource or a stale version
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// NewErrorResponse builds an error body for the given status code
func NewErrorResponse(status int, message, path string) ErrorResponse {
	return ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      path,
	}
}

// ValidationErrorResponse maps each offending field to its violation
// messages. encoding/json emits map keys in sorted order, which gives
// the lexicographic field ordering clients rely on.
type ValidationErrorResponse map[string][]string

// NewValidationErrorResponse folds validator errors into the field map.
// A field may accumulate multiple messages; messages are sorted for a
// stable body.
func NewValidationErrorResponse(verrs validator.ValidationErrors) ValidationErrorResponse {
	body := make(ValidationErrorResponse, len(verrs))
	for _, e := range verrs {
		field := e.Field()
		body[field] = append(body[field], validationMessage(e))
	}
	for _, messages := range body {
		sort.Strings(messages)
	}
	return body
}

// NewConstraintErrorResponse reports a single persistence-constraint
// violation in the same shape as field validation failures
func NewConstraintErrorResponse(field, message string) ValidationErrorResponse {
	return ValidationErrorResponse{field: []string{message}}
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "must not be null"
	case "notblank":
		return "must not be blank"
	case "max":
		return "size must be between 0 and " + e.Param()
	case "min":
		return "size must be at least " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "email":
		return "must be a well-formed email address"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of " + e.Param()
	case "dive":
		return "invalid element"
	default:
		return "invalid value"
	}
}
