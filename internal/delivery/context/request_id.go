package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID correlates log lines and stage events with the request that caused them.
	KeyRequestID ContextKey = "request_id"

	// KeyCycleID identifies the reconciler cycle a context belongs to.
	KeyCycleID ContextKey = "cycle_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the id set by the request id middleware, falling back to the
// request context and finally to a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when no id was attached.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// WithCorrelation attaches a request id and a logger tagged with it.
func WithCorrelation(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, logger.With(slog.String("request_id", requestID)))
}

// WithCycle marks ctx as belonging to a reconciler cycle. The cycle id doubles as the
// request id so stage events published by the cycle can be traced back to it.
func WithCycle(ctx context.Context, cycleID string, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, KeyCycleID, cycleID)
	ctx = WithRequestID(ctx, cycleID)

	return WithLogger(ctx, logger.With(slog.String("cycle_id", cycleID)))
}

// GetCycleIDFromContext returns "" outside a reconciler cycle.
func GetCycleIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyCycleID).(string)

	return id
}

// GetLoggerOrDefault returns the context's logger, or fallback when none was attached.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
