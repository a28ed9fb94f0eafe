package middleware

import (
	"context"
	"log/slog"
)

// contextKey is a private type to prevent context key collisions.
type contextKey string

const (
	loggerKey  = contextKey("logger")
	actorIDKey = contextKey("actorID")
)

// WithLogger returns a context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerFromCtx retrieves the request-scoped logger from the context, or nil when
// none was injected.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return nil
}

// WithActorID returns a context carrying the acting user's ID.
func WithActorID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorIDKey, userID)
}

// GetActorIDFromCtx retrieves the acting user's ID from the context.
func GetActorIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(actorIDKey).(string)
	return id, ok && id != ""
}
