package shell

import (
	"io"
	"log/slog"
	"strings"

	"github.com/AntonStoeckl/library-ledger/library/shell/config"
)

// NewLogger builds the process logger from cfg, writing to output.
// cfg is expected to be validated, an unknown level falls back to info.
func NewLogger(cfg config.Config, output io.Writer) *slog.Logger {
	level, _ := cfg.SlogLevel()

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, config.LogFormatJSON) {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler).With("library", cfg.LibraryName)
}
