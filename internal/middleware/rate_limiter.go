package middleware

import (
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"fioapi/internal/errors"
	"fioapi/internal/handlers"
)

// idleVisitorTTL is how long an unused limiter is kept
const idleVisitorTTL = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// TokenRateLimiter allows one request per interval and token, the way the
// bank does. Excess requests get 409.
type TokenRateLimiter struct {
	interval  time.Duration
	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
	now       func() time.Time
}

// NewTokenRateLimiter creates a limiter. A zero interval disables limiting.
func NewTokenRateLimiter(interval time.Duration) *TokenRateLimiter {
	return &TokenRateLimiter{
		interval: interval,
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

// Middleware returns the echo middleware. It must run after routing so the
// token path parameter is available.
func (l *TokenRateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if l.interval <= 0 {
				return next(c)
			}

			key := c.Param("token")
			if key == "" {
				key = getIP(c)
			}

			if !l.getVisitor(key).AllowN(l.now(), 1) {
				return handlers.SendError(c, errors.APITimeLimit)
			}

			return next(c)
		}
	}
}

func (l *TokenRateLimiter) getVisitor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > time.Minute {
		l.sweep(now)
	}

	v, exists := l.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(rate.Every(l.interval), 1)
		l.visitors[key] = &visitor{limiter, now}
		return limiter
	}

	v.lastSeen = now
	return v.limiter
}

// sweep drops limiters idle for longer than both the TTL and the interval
func (l *TokenRateLimiter) sweep(now time.Time) {
	ttl := max(idleVisitorTTL, l.interval)
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > ttl {
			delete(l.visitors, key)
		}
	}
	l.lastSweep = now
}

func getIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		return xff
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.RealIP()
}
