package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-api/internal/api/metrics"
)

// Limiter is the throttling backend (Redis-based fixed window).
type Limiter interface {
	// Allow reports whether the caller identified by key may proceed.
	Allow(ctx context.Context, key string) (bool, error)
}

// LoginRateLimit throttles login attempts per email + client IP. Limiter
// errors fail open: a degraded Redis must not take the login path down
// with it.
func LoginRateLimit(limiter Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := loginKey(c)

			allowed, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				return next(c)
			}
			if !allowed {
				metrics.LoginAttemptsTotal.WithLabelValues("rate_limited").Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
			}
			return next(c)
		}
	}
}

// emailCarrier is implemented by validated payloads that identify an
// account, so throttling can key on email + client IP instead of IP alone.
type emailCarrier interface {
	AccountEmail() string
}

// loginKey combines the payload email (when the body validated) with the
// client IP so one abusive client cannot lock out an account globally.
func loginKey(c echo.Context) string {
	email := ""
	if carrier, ok := Payload(c).(emailCarrier); ok {
		email = carrier.AccountEmail()
	}
	return email + ":" + c.RealIP()
}
