package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-api/internal/api/metrics"
	"github.com/taskforge/task-api/internal/auth"
	"github.com/taskforge/task-api/internal/core/domain"
)

// principalKey is the context key the verified principal is stored under.
const principalKey = "principal"

// TokenVerifier is the subset of the token manager the middleware needs.
type TokenVerifier interface {
	Verify(token string) (domain.Principal, error)
}

// Auth verifies the bearer token and injects the principal into the
// request context. Missing, malformed, tampered, and expired tokens all
// terminate the request with 401.
func Auth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := tokens.Verify(parts[1])
			if err != nil {
				if err == auth.ErrTokenExpired {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// RequireAdmin gates a route on the admin role. Wired after Auth. A
// non-admin principal gets 401, not 403: the API has always reported
// insufficient role with the same status as missing authentication, and
// clients depend on it.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get(principalKey).(domain.Principal)
			if !ok || !principal.IsAdmin() {
				metrics.AuthzDeniedTotal.WithLabelValues("not_admin").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized as an admin")
			}
			return next(c)
		}
	}
}

// Principal extracts the verified principal stored by Auth. The boolean is
// false when the middleware did not run for this route.
func Principal(c echo.Context) (domain.Principal, bool) {
	principal, ok := c.Get(principalKey).(domain.Principal)
	return principal, ok
}
