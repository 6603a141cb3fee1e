package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/classflow/gateway/internal/core/domain"
	"github.com/classflow/gateway/internal/core/ports"
)

type markAttendanceRequest struct {
	Subject string    `json:"subject" validate:"required"`
	Status  string    `json:"status"  validate:"required,oneof=present absent late"`
	Date    time.Time `json:"date"    validate:"required"`
}

// AttendanceHandler handles the attendance-tracking resource.
type AttendanceHandler struct {
	attendance ports.AttendanceService
}

func NewAttendanceHandler(attendance ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// List handles GET /api/v1/attendance.
func (h *AttendanceHandler) List(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.attendance.List(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// Mark handles POST /api/v1/attendance.
//
// @Summary      Mark attendance for a class session
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body  body      markAttendanceRequest  true  "Attendance record"
// @Success      201   {object}  ports.Envelope
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/attendance [post]
func (h *AttendanceHandler) Mark(c echo.Context) error {
	var req markAttendanceRequest
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
	env, err := h.attendance.Mark(c.Request().Context(), token, domain.AttendanceRecord{
		Subject: req.Subject,
		Status:  domain.AttendanceStatus(req.Status),
		Date:    req.Date,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, env)
}

// Delete handles DELETE /api/v1/attendance/:id.
func (h *AttendanceHandler) Delete(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	env, err := h.attendance.Delete(c.Request().Context(), token, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// Stats handles GET /api/v1/attendance/stats: per-subject rows with derived
// percentages plus the overall figure.
func (h *AttendanceHandler) Stats(c echo.Context) error {
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
