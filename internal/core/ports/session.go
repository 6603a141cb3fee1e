package ports

import (
	"context"
	"time"

	"github.com/classflow/gateway/internal/core/domain"
)

// SessionStore persists per-browser session records. Implementations must
// return domain.ErrSessionNotFound for unknown IDs.
type SessionStore interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, sess *domain.Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// SessionManager is the single writer of session state. No other component
// mutates a Session directly.
type SessionManager interface {
	// Initialize resolves a loading session exactly once: a present token is
	// validated against the backend, any failure degrades to unauthenticated
	// and drops the token. Sessions without a token resolve immediately with
	// no network call.
	Initialize(ctx context.Context, sess *domain.Session) error

	// Login authenticates against the backend. A returned user authenticates
	// the session; a returned token is always persisted. The raw payload is
	// handed back so the caller decides messaging. Errors propagate untouched.
	Login(ctx context.Context, sess *domain.Session, creds Credentials) (*AuthPayload, error)

	// GoogleLogin exchanges a one-time third-party credential with the same
	// persistence semantics as Login.
	GoogleLogin(ctx context.Context, sess *domain.Session, credential string) (*AuthPayload, error)

	// Register never changes session state; the user logs in afterwards.
	Register(ctx context.Context, input RegistrationInput) (*AuthPayload, error)

	// Logout clears token and user without a backend round-trip. Idempotent.
	Logout(ctx context.Context, sess *domain.Session) error

	// UpdateUser replaces the profile wholesale; the token is untouched.
	UpdateUser(ctx context.Context, sess *domain.Session, profile domain.UserProfile) error

	ForgotPassword(ctx context.Context, email string) (*AuthPayload, error)
	ResetPassword(ctx context.Context, email, otp, newPassword string) (*AuthPayload, error)
}
