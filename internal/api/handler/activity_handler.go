package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-api/internal/core/ports"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

// ActivityHandler serves the task activity trail (admin only).
type ActivityHandler struct {
	repo ports.ActivityRepository
}

func NewActivityHandler(repo ports.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{repo: repo}
}

// List handles GET /activity.
//
// @Summary      List recent task activity
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max entries to return (default 50, cap 200)"
// @Success      200    {array}   domain.Activity
// @Failure      401    {object}  map[string]string
// @Router       /activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	limit := defaultActivityLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	entries, err := h.repo.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
