// Package logging builds the colourised slog logger used by the CLI.
package logging

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
)

// TimeFormat is the clock-only timestamp printed on each line.
const TimeFormat = "15:04:05"

// New returns a tint-backed logger writing to w at level.
func New(w io.Writer, level slog.Leveler, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: TimeFormat,
		NoColor:    noColor,
	}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
