// Package testutil provides test helpers shared across packages,
// currently a capturing slog handler for asserting on log output.
package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// Entry is one captured log record.
type Entry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// LogCapture is a slog.Handler that records every log entry so tests
// can assert on messages and attributes. Safe for concurrent use.
type LogCapture struct {
	mu      sync.Mutex
	entries []Entry
}

// NewTestLogger returns a logger whose output is captured.
func NewTestLogger(t *testing.T) (*slog.Logger, *LogCapture) {
	t.Helper()
	capture := &LogCapture{}
	return slog.New(capture), capture
}

func (c *LogCapture) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, Entry{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})
	return nil
}

func (c *LogCapture) Enabled(context.Context, slog.Level) bool { return true }

func (c *LogCapture) WithAttrs(attrs []slog.Attr) slog.Handler {
	// Pre-set attributes are dropped; tests assert on per-call attrs.
	return c
}

func (c *LogCapture) WithGroup(string) slog.Handler { return c }

// Entries returns a copy of everything captured so far.
func (c *LogCapture) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Contains reports whether any entry at the given level contains the
// message substring.
func (c *LogCapture) Contains(level slog.Level, message string) bool {
	for _, e := range c.Entries() {
		if e.Level == level && strings.Contains(e.Message, message) {
			return true
		}
	}
	return false
}

// AttrValue returns the value of the named attribute on the first entry
// whose message contains the given substring.
func (c *LogCapture) AttrValue(message, key string) (any, bool) {
	for _, e := range c.Entries() {
		if strings.Contains(e.Message, message) {
			v, ok := e.Attrs[key]
			return v, ok
		}
	}
	return nil, false
}
