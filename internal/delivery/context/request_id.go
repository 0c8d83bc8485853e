// Package context carries request-scoped values between the transport layer
// and the pipelines.
package context

import (
	"context"
	"log/slog"
)

// ctxKey is unexported so only this package can install values.
type ctxKey int

const (
	keyRequestID ctxKey = iota
	keyLogger
)

// HeaderXRequestID is the HTTP header carrying the request id.
const HeaderXRequestID = "X-Request-Id"

// WithRequestID returns a new context carrying the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// RequestID returns the request id stored in the context, or an empty string.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(keyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithLogger returns a new context carrying the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or the fallback when
// the context was never routed through the HTTP middleware.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok {
		return logger
	}

	return fallback
}
