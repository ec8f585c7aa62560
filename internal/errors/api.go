package errors

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
)

// APIError represents a structured API error response
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// New creates a new APIError with the given parameters
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// NewWithDetails creates a new APIError with additional details
func NewWithDetails(statusCode int, errorCode, message string, details interface{}) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Details:    details,
	}
}

// ToAPIError maps an application error to its HTTP representation.
// Unknown error values map to a generic 500.
func ToAPIError(err error) *APIError {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return New(http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
	}

	switch appErr.Type {
	case ErrTypeConfig, ErrTypeValidation:
		return NewWithDetails(http.StatusBadRequest, string(appErr.Type), appErr.Message, appErr.Context)
	case ErrTypeNotFound:
		return New(http.StatusNotFound, string(appErr.Type), appErr.Message)
	case ErrTypeDataSource:
		return New(http.StatusBadGateway, string(appErr.Type), appErr.Message)
	default:
		return New(http.StatusInternalServerError, string(appErr.Type), appErr.Message)
	}
}
