package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"fioapi/internal/handlers"
)

// PanicRecovery is a middleware that recovers from panics. The answer is a
// 503 because every status the bank documents has its own meaning.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					traceID := GetTraceID(c)
					if traceID == "" {
						traceID = "unknown"
					}

					slog.Error("Panic recovered",
						"trace_id", traceID,
						"panic", fmt.Sprintf("%v", r),
						"stack_trace", string(debug.Stack()),
						"method", c.Request().Method,
						"route", c.Path(),
					)

					err = handlers.SendSystemError(c, fmt.Errorf("panic: %v", r))
				}
			}()

			return next(c)
		}
	}
}
