// Package logger installs the process-wide slog handler and hands out
// loggers enriched with request and match identifiers.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const (
	requestIDKey ctxKey = "requestID"
	matchIDKey   ctxKey = "matchID"
	gameIDKey    ctxKey = "gameID"
)

// InitLogger installs the default logger writing to stdout
func InitLogger(cfg Config) {
	InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter installs the default logger writing to w
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(cfg.BaseAttributes())

	slog.SetDefault(slog.New(handler))
}

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID extracts the request ID from the context, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithMatchID tags the context with the match being played
func WithMatchID(ctx context.Context, matchID string) context.Context {
	return context.WithValue(ctx, matchIDKey, matchID)
}

// WithGameID tags the context with a simulated game index
func WithGameID(ctx context.Context, gameID int) context.Context {
	return context.WithValue(ctx, gameIDKey, gameID)
}

// FromContext returns the default logger carrying whichever identifiers the
// context holds.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if ctx == nil {
		return log
	}
	if id := GetRequestID(ctx); id != "" {
		log = log.With(AttrKeyRequestID, id)
	}
	if id, ok := ctx.Value(matchIDKey).(string); ok && id != "" {
		log = log.With(AttrKeyMatchID, id)
	}
	if id, ok := ctx.Value(gameIDKey).(int); ok {
		log = log.With(AttrKeyGameID, id)
	}
	return log
}

// Info logs on the default logger
func Info(msg string, args ...any) { slog.Default().Info(msg, args...) }

// Warn logs on the default logger
func Warn(msg string, args ...any) { slog.Default().Warn(msg, args...) }

// Error logs on the default logger
func Error(msg string, args ...any) { slog.Default().Error(msg, args...) }

// Debug logs on the default logger
func Debug(msg string, args ...any) { slog.Default().Debug(msg, args...) }
