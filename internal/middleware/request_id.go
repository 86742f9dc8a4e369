package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fioapi/internal/services"
)

const (
	// TraceIDHeader is the header name for the trace ID. The client sends its
	// request id under the same name.
	TraceIDHeader = services.RequestIDHeader
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// RequestID is a middleware that reuses the caller's trace ID or generates a
// new one, and sets it in the response header, the echo context and the
// request context
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			traceID := req.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(services.ContextWithRequestID(req.Context(), traceID)))
			res.Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID extracts the trace ID from the Echo context
// Returns empty string if not found
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
