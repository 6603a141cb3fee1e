package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/classflow/gateway/internal/api/metrics"
	"github.com/classflow/gateway/internal/core/domain"
	"github.com/classflow/gateway/internal/core/ports"
)

const defaultSessionTTL = 12 * time.Hour

// SessionService implements ports.SessionManager: the single source of truth
// for whether a browser session holds a valid logged-in user. All session
// mutations go through here.
type SessionService struct {
	auth  ports.AuthAPI
	store ports.SessionStore
	ttl   time.Duration
	log   zerolog.Logger
}

func NewSessionService(auth ports.AuthAPI, store ports.SessionStore, ttl time.Duration, log zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{auth: auth, store: store, ttl: ttl, log: log}
}

// Initialize resolves a loading session exactly once. The resolved state is
// persisted, so later requests on the same session never re-validate.
func (s *SessionService) Initialize(ctx context.Context, sess *domain.Session) error {
	if sess.State != domain.StateLoading {
		return nil
	}

	if sess.Token == "" {
		metrics.TokenValidationsTotal.WithLabelValues("skipped").Inc()
		sess.Reset()
		return s.persist(ctx, sess)
	}

	profile, err := s.auth.Me(ctx, sess.Token)
	if err != nil {
		// An expired or revoked token is the expected way sessions end, not
		// an error to surface: degrade to unauthenticated and drop the token.
		s.log.Debug().Err(err).Str("session_id", sess.ID).Msg("persisted token rejected")
		metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
		sess.Reset()
		return s.persist(ctx, sess)
	}

	metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
	sess.User = profile
	sess.State = domain.StateAuthenticated
	return s.persist(ctx, sess)
}

func (s *SessionService) Login(ctx context.Context, sess *domain.Session, creds ports.Credentials) (*ports.AuthPayload, error) {
	payload, err := s.auth.Login(ctx, creds)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return s.adopt(ctx, sess, payload)
}

func (s *SessionService) GoogleLogin(ctx context.Context, sess *domain.Session, credential string) (*ports.AuthPayload, error) {
	payload, err := s.auth.GoogleLogin(ctx, credential)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return s.adopt(ctx, sess, payload)
}

// adopt applies a successful auth payload to the session: a returned user
// authenticates it, a returned token is always persisted.
func (s *SessionService) adopt(ctx context.Context, sess *domain.Session, payload *ports.AuthPayload) (*ports.AuthPayload, error) {
	if payload.User != nil {
		sess.User = payload.User
		sess.State = domain.StateAuthenticated
	}
	if payload.Token != "" {
		sess.Token = payload.Token
	}
	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}
	return payload, nil
}

// Register is a pure passthrough: a new account does not imply an
// authenticated session, the user logs in afterwards.
func (s *SessionService) Register(ctx context.Context, input ports.RegistrationInput) (*ports.AuthPayload, error) {
	return s.auth.Register(ctx, input)
}

// Logout clears token and user without a backend round-trip. Calling it on an
// already unauthenticated session is a no-op that still clears storage.
func (s *SessionService) Logout(ctx context.Context, sess *domain.Session) error {
	sess.Reset()
	return s.persist(ctx, sess)
}

// UpdateUser replaces the profile wholesale after an edit; the token is never
// touched.
func (s *SessionService) UpdateUser(ctx context.Context, sess *domain.Session, profile domain.UserProfile) error {
	if !sess.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	sess.User = &profile
	return s.persist(ctx, sess)
}

func (s *SessionService) ForgotPassword(ctx context.Context, email string) (*ports.AuthPayload, error) {
	return s.auth.ForgotPassword(ctx, email)
}

func (s *SessionService) ResetPassword(ctx context.Context, email, otp, newPassword string) (*ports.AuthPayload, error) {
	return s.auth.ResetPassword(ctx, email, otp, newPassword)
}

func (s *SessionService) persist(ctx context.Context, sess *domain.Session) error {
	return s.store.Save(ctx, sess, s.sessionTTL(sess))
}

// sessionTTL caps the store TTL at the bearer token's expiry when the token
// parses as a JWT. The exp claim is read without verification; the gateway
// never holds the signing key, so validity stays the backend's call.
func (s *SessionService) sessionTTL(sess *domain.Session) time.Duration {
	if sess.Token == "" {
		return s.ttl
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(sess.Token, claims); err != nil {
		return s.ttl
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return s.ttl
	}
	if remaining := time.Until(exp.Time); remaining > 0 && remaining < s.ttl {
		return remaining
	}
	return s.ttl
}
