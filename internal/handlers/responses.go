package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"fioapi/internal/errors"
)

// Every failure answered by the mock bank goes through SendError so the
// status always matches the bank's documented mapping (errors.GetHTTPStatus).
// Store failures use SendSystemError, which answers 503 because 500 already
// means "invalid token" in the bank's convention.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorBody is the error payload of the mock server
type ErrorBody struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id,omitempty"`
}

// ErrorResponse wraps ErrorBody
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// NewErrorResponse builds the payload for an error
func NewErrorResponse(e *errors.Error, traceID string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{
		Code:    string(e.Code),
		Message: e.Message,
		Details: e.Details,
		TraceID: traceID,
	}}
}

// SendError sends the bank status for code with a JSON body
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	e := errors.New(code, opts...)
	status := e.Status
	if status == 0 {
		status = http.StatusBadRequest
	}
	return c.JSON(status, NewErrorResponse(e, getTraceID(c)))
}

// SendSystemError logs the internal error and answers 503 without details
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.Error("mock bank internal error",
		"trace_id", traceID,
		"path", c.Path(),
		"error", err,
	)
	return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: ErrorBody{
		Code:    "SYSTEM_001",
		Message: "service unavailable",
		TraceID: traceID,
	}})
}
