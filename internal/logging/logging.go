// Package logging builds the zerolog logger used for diagnostics.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bueno-budget/bueno/internal/config"
)

// New returns a logger writing to w at the configured level and format.
func New(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
		}
		level = l
	}

	out := w
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
