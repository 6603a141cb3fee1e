package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classflow/gateway/internal/api/middleware"
	"github.com/classflow/gateway/internal/core/domain"
)

// ctxSession extracts the session injected by the session middleware and
// fast-fails before any service call when it is missing.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sess, nil
}

// ctxToken returns the session's bearer token. The route guards keep
// unauthenticated requests out, but an authenticated session without a token
// is structurally broken — reject with 401 rather than calling the backend
// with empty credentials.
func ctxToken(c echo.Context) (string, error) {
	sess, err := ctxSession(c)
	if err != nil {
		return "", err
	}
	if !sess.Authenticated() || sess.Token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return sess.Token, nil
}
