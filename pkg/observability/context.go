package observability

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const correlationIDContextKey contextKey = "correlation_id"

// CorrelationIDKey is the log attribute key for correlation IDs.
const CorrelationIDKey = "correlation_id"

// WithCorrelationID adds a correlation ID to the context.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDContextKey, correlationID)
}

// CorrelationIDFromContext extracts the correlation ID from the context.
// Returns an empty string if not present.
func CorrelationIDFromContext(ctx context.Context) string {
	if correlationID, ok := ctx.Value(correlationIDContextKey).(string); ok {
		return correlationID
	}
	return ""
}

// NewCorrelationID generates a new correlation ID.
func NewCorrelationID() string {
	return uuid.New().String()
}

// EnsureCorrelationID returns the context with a correlation ID,
// generating one if not present.
func EnsureCorrelationID(ctx context.Context) (context.Context, string) {
	if correlationID := CorrelationIDFromContext(ctx); correlationID != "" {
		return ctx, correlationID
	}
	correlationID := NewCorrelationID()
	return WithCorrelationID(ctx, correlationID), correlationID
}
