package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "debug", input: "debug", expected: "DEBUG"},
		{name: "info", input: "info", expected: "INFO"},
		{name: "warn", input: "warn", expected: "WARN"},
		{name: "warning alias", input: "WARNING", expected: "WARN"},
		{name: "error", input: "error", expected: "ERROR"},
		{name: "unknown defaults to info", input: "trace", expected: "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input).String())
		})
	}
}

func TestTraceIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	ctx = WithTraceID(ctx, "abc-123")
	assert.Equal(t, "abc-123", GetTraceID(ctx))

	// EnsureTraceID keeps an existing id and generates a missing one.
	assert.Equal(t, "abc-123", GetTraceID(EnsureTraceID(ctx)))
	generated := GetTraceID(EnsureTraceID(context.Background()))
	assert.NotEmpty(t, generated)
}
