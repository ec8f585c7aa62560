package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeConfig         ErrorType = "CONFIG"
	ErrTypeUnitConversion ErrorType = "UNIT_CONVERSION"
	ErrTypeDataSource     ErrorType = "DATA_SOURCE"
	ErrTypeValidation     ErrorType = "VALIDATION"
	ErrTypeStorage        ErrorType = "STORAGE"
	ErrTypeNotFound       ErrorType = "NOT_FOUND"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err carries an AppError of the given type
// anywhere in its chain.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// Helper functions for common error types

// NewConfigError creates a configuration error: an unknown variable or
// unit keyword. Configuration errors are fatal and surface before any
// query executes.
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// NewUnitConversionError creates an error for a conversion pair absent
// from the conversion table. These are row-level exclusions, never run
// failures.
func NewUnitConversionError(fromUnit, toUnit string) *AppError {
	return NewAppError(ErrTypeUnitConversion,
		fmt.Sprintf("no conversion defined from %q to %q", fromUnit, toUnit), nil).
		WithContext("from_unit", fromUnit).
		WithContext("to_unit", toUnit)
}

// NewDataSourceError creates a data source error: connectivity or query
// failure. Fatal, aborts the run with no partial results.
func NewDataSourceError(message string, cause error) *AppError {
	return NewAppError(ErrTypeDataSource, message, cause)
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("%s not found", resource), nil)
}
