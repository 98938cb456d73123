// Package logging builds the service's slog loggers and carries a
// request-scoped logger through context.
//
//	logger := logging.New(cfg.Log, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "list created", slog.Int64("list_id", l.ID()))
//
// Failures are logged with the operation, the ids involved, and the error:
//
//	logger.ErrorContext(ctx, "failed to toggle todo",
//	    slog.String("operation", "ToggleTodo"),
//	    slog.Int64("list_id", listID),
//	    slog.Int64("todo_id", todoID),
//	    slog.Any("error", err),
//	)
//
// Session ids are never logged; the redactor masks them if one slips through.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/go-todo-lists/internal/platform/config"
)

// Output formats accepted in config.LogConfig.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type loggerKey struct{}

// New returns a logger writing to w at cfg.Level in cfg.Format. Levels are
// parsed by slog ("debug", "INFO", "warn+2"); anything unparsable means info.
// Formats other than "text" produce JSON. Debug loggers add source locations.
// Every record passes through the redactor before it is written.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level := ParseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   level <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	if strings.EqualFold(cfg.Format, FormatText) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel converts a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
