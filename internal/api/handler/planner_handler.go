package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/classflow/gateway/internal/core/ports"
)

// PlannerHandler handles the AI study-planner resource. Responses from the
// backend are rendered as-is.
type PlannerHandler struct {
	planner ports.PlannerService
}

func NewPlannerHandler(planner ports.PlannerService) *PlannerHandler {
	return &PlannerHandler{planner: planner}
}

// StudyPlan handles GET /api/v1/ai/studyplan?date=....
func (h *PlannerHandler) StudyPlan(c echo.Context) error {
	date, err := queryDate(c, time.Time{})
	if err != nil {
		return err
	}
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.planner.StudyPlan(c.Request().Context(), token, date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// DailyWorkload handles GET /api/v1/ai/daily?date=....
func (h *PlannerHandler) DailyWorkload(c echo.Context) error {
	date, err := queryDate(c, time.Time{})
	if err != nil {
		return err
	}
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.planner.DailyWorkload(c.Request().Context(), token, date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// Overcommitment handles GET /api/v1/ai/overcommitment?date=....
func (h *PlannerHandler) Overcommitment(c echo.Context) error {
	date, err := queryDate(c, time.Time{})
	if err != nil {
		return err
	}
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.planner.Overcommitment(c.Request().Context(), token, date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// Analytics handles GET /api/v1/ai/analytics?days=7: the procrastination and
// burnout reads issued together, each independently fallible.
func (h *PlannerHandler) Analytics(c echo.Context) error {
	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "days must be a positive integer")
		}
		days = n
	}

	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.planner.Analytics(c.Request().Context(), token, days)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}
