package middleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// RedactedToken replaces the token in logged paths
const RedactedToken = "<token>"

// RequestLogger logs one line per request. The token path parameter is
// replaced before the path is logged.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= 400 {
				level = slog.LevelWarn
			}

			attrs := []slog.Attr{
				slog.String("event_type", "http_request"),
				slog.String("method", v.Method),
				slog.String("path", RedactPath(v.URIPath, c.Param("token"))),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("trace_id", GetTraceID(c)),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(context.Background(), level, "request handled", attrs...)
			return nil
		},
	})
}

// RedactPath replaces every occurrence of token in path
func RedactPath(path, token string) string {
	if token == "" {
		return path
	}
	return strings.ReplaceAll(path, token, RedactedToken)
}
