package handlers

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// Supported log formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatColor = "color"
)

// New returns slog handler for the selected format writing to out.
// Color format falls back to plain text when out is not a terminal.
func New(format string, out io.Writer, level slog.Level) (slog.Handler, error) {
	options := &slog.HandlerOptions{Level: level}

	switch format {
	case FormatText:
		return NewTextHandler(out, options), nil
	case FormatJSON:
		return slog.NewJSONHandler(out, options), nil
	case FormatColor:
		return tint.NewHandler(out, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
			NoColor:    !isTerminal(out),
		}), nil
	default:
		return nil, errors.Errorf("unknown log format: %s", format)
	}
}

// terminal is implemented by CLI streams.
type terminal interface {
	IsTerminal() bool
}

func isTerminal(out io.Writer) bool {
	if t, ok := out.(terminal); ok {
		return t.IsTerminal()
	}

	f, ok := out.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
