package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without cause",
			err:      NewConfigError("unknown variable", nil),
			expected: "[CONFIG] unknown variable",
		},
		{
			name:     "with cause",
			err:      NewDataSourceError("query failed", fmt.Errorf("connection refused")),
			expected: "[DATA_SOURCE] query failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestIsType(t *testing.T) {
	base := NewUnitConversionError("Pa", "percent")
	wrapped := fmt.Errorf("converting column: %w", base)

	assert.True(t, IsType(base, ErrTypeUnitConversion))
	assert.True(t, IsType(wrapped, ErrTypeUnitConversion))
	assert.False(t, IsType(wrapped, ErrTypeConfig))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrTypeUnitConversion))
}

func TestUnitConversionError_Context(t *testing.T) {
	err := NewUnitConversionError("MPa", "decimal")

	assert.Equal(t, "MPa", err.Context["from_unit"])
	assert.Equal(t, "decimal", err.Context["to_unit"])
}

func TestToAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "config error maps to bad request",
			err:        NewConfigError("unknown unit keyword", nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   "CONFIG",
		},
		{
			name:       "validation error maps to bad request",
			err:        NewValidationError("variable1 is required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION",
		},
		{
			name:       "data source error maps to bad gateway",
			err:        NewDataSourceError("connect failed", nil),
			wantStatus: http.StatusBadGateway,
			wantCode:   "DATA_SOURCE",
		},
		{
			name:       "not found maps to 404",
			err:        NewNotFoundError("dataset"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "plain error maps to 500",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := ToAPIError(tt.err)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.ErrorCode)
		})
	}
}
