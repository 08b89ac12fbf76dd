// Package logging builds the zerolog logger used for diagnostics on stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/opencode-ai/colorscheme/internal/config"
)

// New returns a logger writing to w at the configured level and format.
// Console output is colored only when w is a terminal.
func New(w io.Writer, cfg config.LoggingConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	var out io.Writer = w
	switch cfg.Format {
	case "", "console":
		out = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    !IsTerminal(w),
			TimeFormat: time.Kitchen,
		}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
