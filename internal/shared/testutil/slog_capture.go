// Package testutil provides log-capture helpers for asserting on
// structured log output in tests.
package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

// LogRecord is one captured log record.
type LogRecord struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// CaptureHandler is an slog.Handler that buffers records for inspection.
type CaptureHandler struct {
	mu      sync.Mutex
	records []LogRecord
	t       *testing.T
}

// NewTestLogger returns a logger whose output is captured by the returned
// handler. All levels are recorded.
func NewTestLogger(t *testing.T) (*slog.Logger, *CaptureHandler) {
	t.Helper()
	h := &CaptureHandler{t: t}
	return slog.New(h), h
}

// Handle implements slog.Handler.
func (h *CaptureHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	h.mu.Lock()
	h.records = append(h.records, LogRecord{
		Time:    r.Time,
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})
	h.mu.Unlock()

	if h.t != nil {
		h.t.Logf("[%s] %s %v", r.Level, r.Message, attrs)
	}
	return nil
}

// Enabled implements slog.Handler. Tests capture every level.
func (h *CaptureHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler.
func (h *CaptureHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup implements slog.Handler.
func (h *CaptureHandler) WithGroup(_ string) slog.Handler {
	return h
}

// Records returns a copy of the captured records.
func (h *CaptureHandler) Records() []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]LogRecord, len(h.records))
	copy(out, h.records)
	return out
}

// RecordsByLevel returns the captured records at the given level.
func (h *CaptureHandler) RecordsByLevel(level slog.Level) []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []LogRecord
	for _, r := range h.records {
		if r.Level == level {
			out = append(out, r)
		}
	}
	return out
}

// ContainsMessage reports whether any record's message contains message.
func (h *CaptureHandler) ContainsMessage(message string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.records {
		if strings.Contains(r.Message, message) {
			return true
		}
	}
	return false
}
