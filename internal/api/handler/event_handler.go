package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/classflow/gateway/internal/core/ports"
)

const defaultDeadlineLimit = 10

// EventHandler handles the calendar/event resource.
type EventHandler struct {
	events ports.EventService
}

func NewEventHandler(events ports.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// List handles GET /api/v1/events.
//
// @Summary      List all events
// @Tags         events
// @Produce      json
// @Success      200  {object}  ports.Envelope
// @Router       /api/v1/events [get]
func (h *EventHandler) List(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.events.List(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// Get handles GET /api/v1/events/:id.
func (h *EventHandler) Get(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.events.Get(c.Request().Context(), token, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// Create handles POST /api/v1/events. Validation failures are caught here and
// never reach the backend.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      eventRequest  true  "Event details"
// @Success      201   {object}  ports.Envelope
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.events.Create(c.Request().Context(), token, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, env)
}

// Update handles PUT /api/v1/events/:id.
func (h *EventHandler) Update(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.events.Update(c.Request().Context(), token, c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// Delete handles DELETE /api/v1/events/:id.
func (h *EventHandler) Delete(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.events.Delete(c.Request().Context(), token, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// ToggleComplete handles PATCH /api/v1/events/:id/toggle.
func (h *EventHandler) ToggleComplete(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.events.ToggleComplete(c.Request().Context(), token, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// ByDay handles GET /api/v1/events/day?date=2026-09-01.
func (h *EventHandler) ByDay(c echo.Context) error {
	day, err := queryDate(c, time.Now())
	if err != nil {
		return err
	}
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.events.EventsOnDay(c.Request().Context(), token, day)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// Deadlines handles GET /api/v1/events/deadlines?limit=10.
func (h *EventHandler) Deadlines(c echo.Context) error {
	limit := defaultDeadlineLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}

	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.events.UpcomingDeadlines(c.Request().Context(), token, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// TodayStats handles GET /api/v1/events/stats/today.
func (h *EventHandler) TodayStats(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.events.TodayStats(c.Request().Context(), token, time.Now())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// CountForDay handles GET /api/v1/events/count?date=2026-09-01.
func (h *EventHandler) CountForDay(c echo.Context) error {
	day, err := queryDate(c, time.Now())
	if err != nil {
		return err
	}
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.events.CountForDay(c.Request().Context(), token, day)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// queryDate reads the optional "date" query parameter, accepting a calendar
// date or a full RFC 3339 timestamp.
func queryDate(c echo.Context, fallback time.Time) (time.Time, error) {
	raw := c.QueryParam("date")
	if raw == "" {
		return fallback, nil
	}
	if d, err := time.Parse("2006-01-02", raw); err == nil {
		return d, nil
	}
	if d, err := time.Parse(time.RFC3339, raw); err == nil {
		return d, nil
	}
	return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD or RFC3339")
}
