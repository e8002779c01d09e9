// Package logging builds the slog logger used by the kata CLI.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"

	"github.com/katalvlaran/kata/internal/config"
)

// New returns a tint-backed logger writing to w at the configured level.
// An unknown level falls back to error.
func New(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	level, _ := cfg.Level.Slog()

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}))
}
