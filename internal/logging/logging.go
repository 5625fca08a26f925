// Package logging builds the CLI's slog logger and carries it on a context.
package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
)

type ctxKey struct{}

// Options selects where and how much the CLI logs.
type Options struct {
	Writer io.Writer // defaults to stderr
	Level  string    // debug, info, warn, error; empty means info
	Format string    // text or json; empty means text
	Quiet  bool      // only errors are logged, whatever Level says
}

// New constructs a slog.Logger from opts.
func New(opts Options) (*slog.Logger, error) {
	lvl, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Quiet && lvl.Level() < slog.LevelError {
		lvl.Set(slog.LevelError)
	}
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	var handler slog.Handler
	hopts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(opts.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, hopts)
	case "text", "":
		handler = slog.NewTextHandler(w, hopts)
	default:
		return nil, errors.New("unsupported log format: " + opts.Format)
	}

	return slog.New(handler), nil
}

// WithContext attaches a logger to the context.
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in context or a default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}

func parseLevel(level string) (*slog.LevelVar, error) {
	lv := new(slog.LevelVar)
	lower := strings.ToLower(level)
	if lower == "" {
		lower = "info"
	}
	if err := lv.UnmarshalText([]byte(lower)); err != nil {
		return nil, err
	}
	return lv, nil
}
