package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies application errors by origin.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND_ERROR"
	ErrorTypeStore      ErrorType = "STORE_ERROR"
	ErrorTypeInternal   ErrorType = "INTERNAL_ERROR"
)

// Common application errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrLeagueNotFound   = errors.New("league not found")
	ErrTeamNotFound     = errors.New("team not found")
	ErrMatchNotFound    = errors.New("match not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidStorePath = errors.New("invalid store path")
)

// AppError represents a custom application error with context
type AppError struct {
	Type     ErrorType              `json:"type"`
	Message  string                 `json:"message"`
	HTTPCode int                    `json:"-"`
	Details  map[string]interface{} `json:"details,omitempty"`
	Cause    error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause adds the underlying cause
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail adds a detail field
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errorType ErrorType, message string, httpCode int) *AppError {
	return &AppError{
		Type:     errorType,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// NewValidationError creates a validation error. The message must name the
// missing or malformed fields so the transport can echo it to the caller.
func NewValidationError(message string) *AppError {
	return NewAppError(ErrorTypeValidation, message, http.StatusBadRequest)
}

// NewNotFoundError creates a not found error for the given resource.
// Unresolved IDs surface to the transport as operation failures (500),
// so the HTTP code here is intentionally not 404.
func NewNotFoundError(resource string) *AppError {
	return NewAppError(ErrorTypeNotFound, fmt.Sprintf("%s not found", resource), http.StatusInternalServerError)
}

// NewStoreError creates an error for a failed store operation
func NewStoreError(message string) *AppError {
	return NewAppError(ErrorTypeStore, message, http.StatusInternalServerError)
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *AppError {
	return NewAppError(ErrorTypeInternal, message, http.StatusInternalServerError)
}

// WrapError wraps an error with context, passing AppErrors through untouched
func WrapError(err error, message string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError(message).WithCause(err)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == ErrorTypeValidation
	}
	return false
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == ErrorTypeNotFound
	}
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrLeagueNotFound) ||
		errors.Is(err, ErrTeamNotFound) || errors.Is(err, ErrMatchNotFound)
}

// IsStore checks if an error originated in the backing store
func IsStore(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == ErrorTypeStore
	}
	return false
}
