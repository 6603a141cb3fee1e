package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/classflow/gateway/internal/core/domain"
	"github.com/classflow/gateway/internal/core/ports"
)

type timetableRequest struct {
	CourseName string `json:"courseName" validate:"required"`
	Instructor string `json:"instructor"`
	Room       string `json:"room"`
	DaysOfWeek []int  `json:"daysOfWeek" validate:"required,min=1,dive,gte=0,lte=6"`
	StartTime  string `json:"startTime"  validate:"required"`
	EndTime    string `json:"endTime"    validate:"required"`
}

func (r timetableRequest) toDomain() domain.TimetableEntry {
	return domain.TimetableEntry{
		CourseName: r.CourseName,
		Instructor: r.Instructor,
		Room:       r.Room,
		DaysOfWeek: r.DaysOfWeek,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
	}
}

// TimetableHandler handles the weekly class timetable resource.
type TimetableHandler struct {
	timetable ports.TimetableService
}

func NewTimetableHandler(timetable ports.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetable: timetable}
}

// List handles GET /api/v1/timetable.
func (h *TimetableHandler) List(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.timetable.List(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// Create handles POST /api/v1/timetable.
func (h *TimetableHandler) Create(c echo.Context) error {
	var req timetableRequest
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
	env, err := h.timetable.Create(c.Request().Context(), token, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, env)
}

// Update handles PUT /api/v1/timetable/:id.
func (h *TimetableHandler) Update(c echo.Context) error {
	var req timetableRequest
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
	env, err := h.timetable.Update(c.Request().Context(), token, c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// Delete handles DELETE /api/v1/timetable/:id.
func (h *TimetableHandler) Delete(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.timetable.Delete(c.Request().Context(), token, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// ByDay handles GET /api/v1/timetable/day?weekday=1 (0 = Sunday). Defaults to
// the current weekday.
func (h *TimetableHandler) ByDay(c echo.Context) error {
	day := time.Now().Weekday()
	if raw := c.QueryParam("weekday"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 6 {
			return echo.NewHTTPError(http.StatusBadRequest, "weekday must be 0-6")
		}
		day = time.Weekday(n)
	}

	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.timetable.EntriesForDay(c.Request().Context(), token, day)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}
