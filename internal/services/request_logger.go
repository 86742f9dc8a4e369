package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request id to the server
const RequestIDHeader = "X-Trace-ID"

type requestIDKey struct{}

// ContextWithRequestID attaches a request id that is reported with every log event
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request id attached to ctx, if any
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}

func ensureRequestID(ctx context.Context) context.Context {
	if RequestIDFromContext(ctx) != "" {
		return ctx
	}
	return ContextWithRequestID(ctx, uuid.NewString())
}

// RequestLogger provides structured logging for calls to the bank API
type RequestLogger struct {
	logger *slog.Logger
}

// NewRequestLogger creates a new request logger
func NewRequestLogger(logger *slog.Logger) RequestLoggerInterface {
	return &RequestLogger{
		logger: logger,
	}
}

// LogRequestStarted logs an outgoing request. url must not contain the token.
func (rl *RequestLogger) LogRequestStarted(ctx context.Context, endpoint, url string) {
	rl.logger.DebugContext(ctx, "GET request to "+url,
		slog.String("event_type", "request_started"),
		slog.String("endpoint", endpoint),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (rl *RequestLogger) LogRequestCompleted(ctx context.Context, endpoint string, status, size int, duration time.Duration) {
	rl.logger.DebugContext(ctx, "received response",
		slog.String("event_type", "request_completed"),
		slog.String("endpoint", endpoint),
		slog.Int("status", status),
		slog.Int("bytes", size),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (rl *RequestLogger) LogRequestFailed(ctx context.Context, endpoint string, err error, duration time.Duration) {
	rl.logger.WarnContext(ctx, "request failed",
		slog.String("event_type", "request_failed"),
		slog.String("endpoint", endpoint),
		slog.String("error", err.Error()),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (rl *RequestLogger) LogTransactionsParsed(ctx context.Context, count int) {
	rl.logger.DebugContext(ctx, "transactions parsed",
		slog.String("event_type", "transactions_parsed"),
		slog.Int("count", count),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (rl *RequestLogger) LogParseFailed(ctx context.Context, target string, err error) {
	rl.logger.WarnContext(ctx, "response parse failed",
		slog.String("event_type", "parse_failed"),
		slog.String("target", target),
		slog.String("error", err.Error()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}
