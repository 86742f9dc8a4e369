package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func newLimitedEcho(limiter *TokenRateLimiter) *echo.Echo {
	e := echo.New()
	e.GET("/last/:token/:file", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, limiter.Middleware())
	return e
}

func serve(e *echo.Echo, path string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestTokenRateLimiter_OneRequestPerInterval(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	limiter := NewTokenRateLimiter(30 * time.Second)
	limiter.now = clock.Now
	e := newLimitedEcho(limiter)

	assert.Equal(t, http.StatusOK, serve(e, "/last/token-a/transactions.json"))
	assert.Equal(t, http.StatusConflict, serve(e, "/last/token-a/transactions.json"))

	// Other tokens are limited independently
	assert.Equal(t, http.StatusOK, serve(e, "/last/token-b/transactions.json"))

	clock.now = clock.now.Add(29 * time.Second)
	assert.Equal(t, http.StatusConflict, serve(e, "/last/token-a/transactions.json"))

	clock.now = clock.now.Add(2 * time.Second)
	assert.Equal(t, http.StatusOK, serve(e, "/last/token-a/transactions.json"))
}

func TestTokenRateLimiter_Disabled(t *testing.T) {
	e := newLimitedEcho(NewTokenRateLimiter(0))

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, serve(e, "/last/token-a/transactions.json"))
	}
}

func TestTokenRateLimiter_SweepsIdleVisitors(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	limiter := NewTokenRateLimiter(time.Second)
	limiter.now = clock.Now
	e := newLimitedEcho(limiter)

	serve(e, "/last/token-a/transactions.json")
	serve(e, "/last/token-b/transactions.json")
	assert.Len(t, limiter.visitors, 2)

	clock.now = clock.now.Add(10 * time.Minute)
	serve(e, "/last/token-c/transactions.json")

	assert.Len(t, limiter.visitors, 1)
	assert.Contains(t, limiter.visitors, "token-c")
}

func TestGetIP_PrefersForwardedHeaders(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	c := e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "10.0.0.1", getIP(c))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "10.0.0.2")
	c = e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "10.0.0.2", getIP(c))
}
