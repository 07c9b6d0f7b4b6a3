package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-api/internal/api/middleware"
	"github.com/taskforge/task-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware. An
// absent principal means the route was wired without the middleware; fail
// with 401 rather than proceeding unauthenticated.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := middleware.Principal(c)
	if !ok || principal.UserID == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}
