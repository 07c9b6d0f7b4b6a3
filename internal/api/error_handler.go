package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskforge/task-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
//
// In development the underlying error text of unexpected failures is
// included as "detail"; in any other environment it is withheld.
func NewHTTPErrorHandler(log zerolog.Logger, env string) echo.HTTPErrorHandler {
	dev := env == "development"

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, detail := resolveError(err, log, c, dev)
		_ = c.JSON(code, errorResponse{Error: msg, Detail: detail})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, dev bool) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejects).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), ""
	}

	// Known domain errors → deterministic HTTP codes. Insufficient role and
	// failed ownership map to 401, matching the long-standing contract.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials", ""
	case errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusUnauthorized, "not authorized", ""
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, "task not found", ""
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "product not found", ""
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found", ""
	// Duplicate registration has always been reported as 400, like a
	// validation failure on the email field. Clients depend on it.
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "user already exists", ""
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	detail := ""
	if dev {
		detail = err.Error()
	}
	return http.StatusInternalServerError, "internal server error", detail
}
