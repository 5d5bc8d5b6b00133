// Package logging provides shared slog helpers used across the application:
// context-carried loggers, structured HTTP request logging, and a safe Close
// wrapper for deferred cleanup.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey string

const loggerKey contextKey = "logger"

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in the context, or slog.Default()
// when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// LogHTTPRequest logs a completed HTTP request with a consistent attribute set.
func LogHTTPRequest(logger *slog.Logger, method, path string, status int, durationMs float64, extra ...any) {
	args := []any{
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("duration_ms", durationMs),
	}
	args = append(args, extra...)
	logger.Info("http request", args...)
}

// LogError logs an error with a message, tolerating a nil logger.
func LogError(logger *slog.Logger, msg string, err error, extra ...any) {
	if logger == nil {
		logger = slog.Default()
	}
	args := []any{slog.Any("error", err)}
	args = append(args, extra...)
	logger.Error(msg, args...)
}

// LogOperation records a named operation at info level.
func LogOperation(logger *slog.Logger, operation string, extra ...any) {
	if logger == nil {
		logger = slog.Default()
	}
	args := []any{slog.String("operation", operation)}
	args = append(args, extra...)
	logger.Info("operation", args...)
}

// SafeCloseWithLogging closes the given closer and logs any error instead of
// discarding it. Intended for use in defer statements.
func SafeCloseWithLogging(c io.Closer, logger *slog.Logger, resource string) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("failed to close resource",
			slog.String("resource", resource),
			slog.Any("error", err))
	}
}
