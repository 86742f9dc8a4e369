package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loggedToken = "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyzabcdefghijkl"

func TestRequestLogger_RedactsToken(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(RequestID())
	e.GET("/last/:token/:file", func(c echo.Context) error {
		return c.String(http.StatusOK, "{}")
	}, RequestLogger(logger))

	req := httptest.NewRequest(http.MethodGet, "/last/"+loggedToken+"/transactions.json", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, buf.String(), loggedToken)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/last/<token>/transactions.json", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, "http_request", entry["event_type"])
	assert.NotEmpty(t, entry["trace_id"])
}

func TestRequestLogger_LogsErrorsAsWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	e.HTTPErrorHandler = CustomHTTPErrorHandler
	e.GET("/by-id/:token/:year/:id/:file", func(c echo.Context) error {
		return echo.ErrNotFound
	}, RequestLogger(logger))

	req := httptest.NewRequest(http.MethodGet, "/by-id/"+loggedToken+"/2024/1/transactions.json", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, strings.Contains(buf.String(), "level=WARN"), buf.String())
	assert.NotContains(t, buf.String(), loggedToken)
}

func TestRedactPath(t *testing.T) {
	assert.Equal(t, "/set-last-id/<token>/5/", RedactPath("/set-last-id/secret/5/", "secret"))
	assert.Equal(t, "/health", RedactPath("/health", ""))
}
