package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"salesboard/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts handler panics into standardized 500 responses.
// The panic value and stack stay server-side; the client only sees the
// generic system error carrying the trace ID to quote.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = TraceIDFromContext(c.Request().Context())
				}

				slog.Error("panic recovered",
					"trace_id", traceID,
					"panic", r,
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"stack", string(debug.Stack()),
				)

				response := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if err := c.JSON(http.StatusInternalServerError, response); err != nil {
					slog.Error("failed to send panic recovery response",
						"trace_id", traceID,
						"error", err.Error(),
					)
				}
			}()

			return next(c)
		}
	}
}
