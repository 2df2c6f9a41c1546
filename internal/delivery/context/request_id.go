// Package context provides helpers for carrying request-scoped values.
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
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeySubject is the key for storing the authenticated token subject (email).
	KeySubject ContextKey = "subject"

	// KeyRole is the key for storing the authenticated role claim.
	KeyRole ContextKey = "role"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetSubject extracts the authenticated subject (email) from echo.Context.
func GetSubject(c echo.Context) (string, bool) {
	subject, ok := c.Get(string(KeySubject)).(string)

	return subject, ok && subject != ""
}

// SetSubject stores the authenticated subject on the echo.Context.
func SetSubject(c echo.Context, subject string) {
	c.Set(string(KeySubject), subject)
}

// ClearAuthentication removes any authentication state carried by the request.
// Tokens are stateless, so this only affects the current exchange.
func ClearAuthentication(c echo.Context) {
	c.Set(string(KeySubject), nil)
	c.Set(string(KeyRole), nil)
}
