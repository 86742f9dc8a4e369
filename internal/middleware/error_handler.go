package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apierrors "fioapi/internal/errors"
	"fioapi/internal/handlers"
)

var (
	// Mock API errors counter metric
	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fio_mock_errors_total",
			Help: "Total number of mock bank API errors by code, route, and status",
		},
		[]string{"code", "route", "status"},
	)
)

// CustomHTTPErrorHandler answers errors that handlers returned instead of
// writing a response. Routing failures and malformed parameters become the
// bank's 404.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var (
		appErr  *apierrors.Error
		echoErr *echo.HTTPError
		code    apierrors.ErrorCode
		sendErr error
	)

	switch {
	case errors.As(err, &appErr):
		code = appErr.Code
		if appErr.IsValidationError() {
			code = apierrors.APIInvalidRequest
		}
		if apierrors.GetHTTPStatus(code) == 0 {
			code = ""
		}
	case errors.As(err, &echoErr):
		code = mapHTTPStatusToErrorCode(echoErr.Code)
	}

	if code == "" {
		sendErr = handlers.SendSystemError(c, err)
	} else {
		sendErr = handlers.SendError(c, code, apierrors.WithDetails(err.Error()))
	}

	status := c.Response().Status
	logLevel := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", string(code),
		"status", status,
		"route", c.Path(),
		"method", c.Request().Method,
		"error", RedactPath(err.Error(), c.Param("token")),
	)

	apiErrorsTotal.WithLabelValues(
		string(code),
		c.Path(),
		fmt.Sprintf("%d", status),
	).Inc()

	if sendErr != nil {
		slog.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

// mapHTTPStatusToErrorCode maps echo statuses onto the bank's codes. An empty
// code means the failure is internal.
func mapHTTPStatusToErrorCode(status int) apierrors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusNotFound, http.StatusMethodNotAllowed:
		return apierrors.APIInvalidRequest
	case http.StatusConflict, http.StatusTooManyRequests:
		return apierrors.APITimeLimit
	case http.StatusRequestEntityTooLarge:
		return apierrors.APITooManyItems
	case http.StatusUnprocessableEntity, http.StatusUnauthorized, http.StatusForbidden:
		return apierrors.APIAuthorization
	default:
		return ""
	}
}
