// Package logging builds the slog logger of the filterargv CLI and carries it
// through command contexts.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/cardinalby/go-filter-argv/internal/config"
)

// New returns a logger writing to w with the format and level from cfg.
// Stdout carries the filtered arguments, so callers pass stderr.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	return slog.New(newHandler(cfg.LogFormat, w, ParseLevel(cfg.EffectiveLogLevel())))
}

func newHandler(format string, w io.Writer, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == config.LogFormatJSON {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

// ParseLevel maps a level name to slog.Level. Unknown names give slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}

	return l
}

type ctxKey struct{}

// NewContext returns a child context carrying logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored by NewContext or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}

	return slog.Default()
}
