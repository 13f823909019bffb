// Package logging builds the slog logger used by the CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goliatone/go-fieldedit/pkg/config"
)

// Format represents logger output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*settings)

type settings struct {
	output io.Writer
	attrs  []slog.Attr
}

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(s *settings) {
		s.attrs = append(s.attrs, attrs...)
	}
}

// New builds a logger from cfg. Output defaults to stderr so it never mixes
// with field output on stdout.
func New(cfg config.Config, opts ...Option) (*slog.Logger, error) {
	s := &settings{output: os.Stderr}
	for _, opt := range opts {
		opt(s)
	}

	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch Format(strings.ToLower(cfg.LogFormat)) {
	case FormatJSON:
		handler = slog.NewJSONHandler(s.output, handlerOpts)
	case FormatText, "":
		handler = slog.NewTextHandler(s.output, handlerOpts)
	default:
		return nil, fmt.Errorf("logging: invalid log format %q: must be %q or %q", cfg.LogFormat, FormatJSON, FormatText)
	}
	if len(s.attrs) > 0 {
		handler = handler.WithAttrs(s.attrs)
	}
	return slog.New(handler), nil
}

// ParseLevel maps a level name to a slog.Level. Empty means info.
func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("logging: invalid log level %q", raw)
	}
}
