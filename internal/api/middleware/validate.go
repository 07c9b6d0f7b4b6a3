package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-api/internal/api/validation"
)

// payloadKey is the context key the validated payload is stored under.
const payloadKey = "validated_payload"

// validationErrorResponse mirrors the error envelope clients already
// depend on: a fixed message plus the full list of violations.
type validationErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// ValidateBody binds the request body into a fresh schema value produced
// by newPayload, runs the validation pipeline, and stores the validated
// payload in the request context. Registered before the auth middleware on
// every route that has both: a malformed body is rejected regardless of
// who sent it, so no identity work happens first.
func ValidateBody(newPayload func() any) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			payload := newPayload()
			if err := c.Bind(payload); err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			}

			if msgs := validation.Check(payload); msgs != nil {
				return c.JSON(http.StatusBadRequest, validationErrorResponse{
					Message: "Validation Error",
					Errors:  msgs,
				})
			}

			c.Set(payloadKey, payload)
			return next(c)
		}
	}
}

// Payload retrieves the validated payload stored by ValidateBody.
func Payload(c echo.Context) any {
	return c.Get(payloadKey)
}
