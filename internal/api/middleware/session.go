package middleware

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/classflow/gateway/internal/core/domain"
	"github.com/classflow/gateway/internal/core/ports"
)

// SessionKey is the echo context key the loaded session is stored under.
const SessionKey = "session"

// LoadSession resolves the browser session for every request.
//
// A missing or unknown cookie yields a fresh unauthenticated session (and a
// new cookie). A session still in the loading state — a persisted token that
// has not been validated yet — is resolved through the manager exactly once;
// the outcome is persisted, so no later request re-validates.
func LoadSession(store ports.SessionStore, manager ports.SessionManager, cookieName string, secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			var sess *domain.Session
			if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
				got, err := store.Get(ctx, cookie.Value)
				switch {
				case err == nil:
					sess = got
				case errors.Is(err, domain.ErrSessionNotFound):
					// expired record; fall through to a fresh session
				default:
					return err
				}
			}

			if sess == nil {
				sess = domain.NewSession(uuid.NewString(), "")
				c.SetCookie(&http.Cookie{
					Name:     cookieName,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			if sess.State == domain.StateLoading {
				if err := manager.Initialize(ctx, sess); err != nil {
					return err
				}
			}

			c.Set(SessionKey, sess)
			return next(c)
		}
	}
}

// CurrentSession returns the session injected by LoadSession, or nil when the
// middleware did not run.
func CurrentSession(c echo.Context) *domain.Session {
	sess, _ := c.Get(SessionKey).(*domain.Session)
	return sess
}
