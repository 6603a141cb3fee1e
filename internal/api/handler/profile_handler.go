package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classflow/gateway/internal/core/domain"
	"github.com/classflow/gateway/internal/core/ports"
)

// ProfileHandler handles the signed-in user's profile. Edits go to the
// backend first; only a confirmed profile replaces the session copy.
type ProfileHandler struct {
	auth     ports.AuthAPI
	sessions ports.SessionManager
}

func NewProfileHandler(auth ports.AuthAPI, sessions ports.SessionManager) *ProfileHandler {
	return &ProfileHandler{auth: auth, sessions: sessions}
}

// Get handles GET /api/v1/profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if !sess.Authenticated() {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return c.JSON(http.StatusOK, ports.Envelope{Success: true, Data: sess.User})
}

// Update handles PUT /api/v1/profile.
func (h *ProfileHandler) Update(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	updated, err := h.auth.UpdateProfile(c.Request().Context(), token, domain.UserProfile{
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		return err
	}
	if err := h.sessions.UpdateUser(c.Request().Context(), sess, *updated); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ports.Envelope{Success: true, Data: updated})
}
