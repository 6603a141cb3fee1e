package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classflow/gateway/internal/core/ports"
)

// AuthHandler exposes the session lifecycle: login, registration, logout,
// the third-party sign-in path, and the password-reset flow.
type AuthHandler struct {
	sessions ports.SessionManager
}

func NewAuthHandler(sessions ports.SessionManager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login authenticates against the backend and binds the result to the
// browser session. The raw backend payload is returned so the client decides
// the success messaging.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  ports.AuthPayload
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
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

	payload, err := h.sessions.Login(c.Request().Context(), sess, ports.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payload)
}

// GoogleLogin exchanges a one-time third-party credential for a session.
//
// @Summary      Google sign-in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      googleLoginRequest  true  "One-time credential"
// @Success      200   {object}  ports.AuthPayload
// @Router       /api/v1/auth/google [post]
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
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

	payload, err := h.sessions.GoogleLogin(c.Request().Context(), sess, req.Credential)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payload)
}

// Register creates a new account. It never authenticates the session; the
// user logs in afterwards.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  ports.AuthPayload
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	payload, err := h.sessions.Register(c.Request().Context(), ports.RegistrationInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, payload)
}

// Logout clears the session. Idempotent; no backend round-trip.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  ports.Envelope
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Logout(c.Request().Context(), sess); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ports.Envelope{Success: true, Message: "signed out"})
}

// Session reports the resolved session state and user, the client shell's
// source of truth for route reachability.
func (h *AuthHandler) Session(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{
		State: string(sess.State),
		User:  sess.User,
	})
}

// ForgotPassword starts the OTP reset flow.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	payload, err := h.sessions.ForgotPassword(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payload)
}

// ResetPassword verifies the OTP and sets the new password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	payload, err := h.sessions.ResetPassword(c.Request().Context(), req.Email, req.OTP, req.NewPassword)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payload)
}
