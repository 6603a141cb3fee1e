package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/classflow/gateway/internal/core/domain"
	"github.com/classflow/gateway/internal/core/ports"
)

// PageHandler serves the per-page view models behind the route guards. Each
// page is a thin composition of resource-service reads; all rendering happens
// client-side.
type PageHandler struct {
	events     ports.EventService
	timetable  ports.TimetableService
	attendance ports.AttendanceService
	planner    ports.PlannerService
}

func NewPageHandler(
	events ports.EventService,
	timetable ports.TimetableService,
	attendance ports.AttendanceService,
	planner ports.PlannerService,
) *PageHandler {
	return &PageHandler{
		events:     events,
		timetable:  timetable,
		attendance: attendance,
		planner:    planner,
	}
}

type homeView struct {
	User  *domain.UserProfile `json:"user"`
	Stats *ports.Envelope     `json:"stats"`
	Today *ports.Envelope     `json:"today"`
}

// Home handles GET /: the day's overview plus the events list the dashboard
// derives its upcoming section from.
func (h *PageHandler) Home(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	now := time.Now()

	stats, err := h.events.TodayStats(ctx, token, now)
	if err != nil {
		return err
	}
	today, err := h.events.EventsOnDay(ctx, token, now)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, homeView{User: sess.User, Stats: stats, Today: today})
}

// Calendar handles GET /calendar?date=...: the selected day's events.
func (h *PageHandler) Calendar(c echo.Context) error {
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

// Events handles GET /events: the full event list.
func (h *PageHandler) Events(c echo.Context) error {
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

// Timetable handles GET /timetable: the full weekly schedule.
func (h *PageHandler) Timetable(c echo.Context) error {
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

// Attendance handles GET /attendance: the derived stats view.
func (h *PageHandler) Attendance(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.attendance.Stats(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// Profile handles GET /profile.
func (h *PageHandler) Profile(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ports.Envelope{Success: true, Data: sess.User})
}

type studyPlanView struct {
	Plan      *ports.Envelope `json:"plan"`
	Analytics *ports.Envelope `json:"analytics"`
}

// StudyPlan handles GET /study-plan?date=...: the generated plan plus the
// analytics pair.
func (h *PageHandler) StudyPlan(c echo.Context) error {
	date, err := queryDate(c, time.Time{})
	if err != nil {
		return err
	}
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	plan, err := h.planner.StudyPlan(ctx, token, date)
	if err != nil {
		return err
	}
	analytics, err := h.planner.Analytics(ctx, token, 0)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, studyPlanView{Plan: plan, Analytics: analytics})
}

// SignIn handles GET /auth for unauthenticated visitors; the client shell
// only needs to know the session is not signed in.
func (h *PageHandler) SignIn(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{State: string(sess.State)})
}

// ForgotPassword handles GET /forgot-password.
func (h *PageHandler) ForgotPassword(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{State: string(sess.State)})
}
