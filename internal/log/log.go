// Package log builds the slog logger used by the logpuzzle CLI.
//
// Progress and diagnostics go to stderr so that stdout carries only the
// URL list or the download summary.
package log

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w. Verbose mode logs at Info level
// (one line per downloaded image); otherwise only warnings and errors appear.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
