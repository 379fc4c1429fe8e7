package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID on requests and responses.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the echo context key holding the trace ID.
	TraceIDContextKey = "trace_id"
)

type traceIDKey struct{}

// RequestID tags every request with a trace ID: reused from the incoming
// header when the caller supplied one, freshly generated otherwise. The
// ID is echoed on the response and planted in both the echo context and
// the request context, so code below the handler layer can recover it
// without an echo dependency.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(c.Request().WithContext(
				context.WithValue(c.Request().Context(), traceIDKey{}, traceID),
			))
			c.Response().Header().Set(TraceIDHeader, traceID)

			return next(c)
		}
	}
}

// GetTraceID extracts the trace ID from the echo context. Returns the
// empty string for requests that did not pass through RequestID.
func GetTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}

// TraceIDFromContext extracts the trace ID planted by RequestID from a
// plain request context
func TraceIDFromContext(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}
	return ""
}
