package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classflow/gateway/internal/api/metrics"
)

// Protected gates page navigation on an authenticated session; anyone else is
// sent to the sign-in route. The 303 makes the browser replace the navigation
// instead of stacking it, so the back button cannot return a signed-out user
// to a protected page.
func Protected(signInPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := CurrentSession(c)
			if sess == nil || !sess.Authenticated() {
				metrics.GuardRedirectsTotal.WithLabelValues("protected").Inc()
				return c.Redirect(http.StatusSeeOther, signInPath)
			}
			return next(c)
		}
	}
}

// Public is the inverse guard for the sign-in and password-reset routes: an
// already authenticated session is sent home.
func Public(homePath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := CurrentSession(c)
			if sess != nil && sess.Authenticated() {
				metrics.GuardRedirectsTotal.WithLabelValues("public").Inc()
				return c.Redirect(http.StatusSeeOther, homePath)
			}
			return next(c)
		}
	}
}

// RequireAuth is the API-group variant of Protected: JSON clients get a 401
// instead of a redirect.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := CurrentSession(c)
			if sess == nil || !sess.Authenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}
