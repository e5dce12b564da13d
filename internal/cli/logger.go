// internal/cli/logger.go
package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger creates the structured stderr logger for one run. When
// stderr is a terminal the handler is human-readable text; when piped
// or redirected it is JSON, one record per line. Quiet raises the level
// so routine diagnostics are dropped while errors still surface.
func NewLogger(stderr io.Writer, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if f, ok := stderr.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		handler = slog.NewTextHandler(stderr, options)
	} else {
		handler = slog.NewJSONHandler(stderr, options)
	}
	return slog.New(handler)
}
