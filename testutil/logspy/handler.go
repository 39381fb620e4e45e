package logspy

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// Handler is a slog.Handler implementation that captures log records for testing.
type Handler struct {
	records     []slog.Record
	mu          sync.Mutex
	logToStdout bool
}

// NewHandler creates a new Handler that only captures.
func NewHandler() *Handler {
	return &Handler{records: make([]slog.Record, 0)}
}

// NewEchoingHandler creates a Handler that also writes every record to stdout as JSON,
// which helps when debugging a failing test.
func NewEchoingHandler() *Handler {
	return &Handler{records: make([]slog.Record, 0), logToStdout: true}
}

// Logger returns a *slog.Logger writing into this Handler.
func (h *Handler) Logger() *slog.Logger {
	return slog.New(h)
}

// Handle implements slog.Handler interface.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record.Clone())

	if h.logToStdout {
		_ = slog.NewJSONHandler(os.Stdout, nil).Handle(ctx, record)
	}

	return nil
}

// Enabled implements slog.Handler interface.
func (h *Handler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler interface. Attributes added via With are not captured.
func (h *Handler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup implements slog.Handler interface.
func (h *Handler) WithGroup(_ string) slog.Handler {
	return h
}

// RecordCount returns the number of captured log records.
func (h *Handler) RecordCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.records)
}

// Records returns a copy of all captured log records.
func (h *Handler) Records() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	records := make([]slog.Record, len(h.records))
	copy(records, h.records)

	return records
}

// Reset clears all captured log records.
func (h *Handler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = h.records[:0]
}

// HasMessage checks if any record, regardless of level, carries the message.
func (h *Handler) HasMessage(message string) bool {
	return h.find(func(r slog.Record) bool { return r.Message == message })
}

// HasLevelMessage checks if a record with the given level carries the message.
func (h *Handler) HasLevelMessage(level slog.Level, message string) bool {
	return h.find(func(r slog.Record) bool { return r.Level == level && r.Message == message })
}

// HasMessageWithAttr checks if a record carries the message and an attribute whose value
// renders to the given string.
func (h *Handler) HasMessageWithAttr(message string, key string, value string) bool {
	return h.find(func(r slog.Record) bool {
		if r.Message != message {
			return false
		}

		found := false
		r.Attrs(func(attr slog.Attr) bool {
			if attr.Key == key && attr.Value.String() == value {
				found = true
				return false
			}

			return true
		})

		return found
	})
}

func (h *Handler) find(match func(slog.Record) bool) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, record := range h.records {
		if match(record) {
			return true
		}
	}

	return false
}
