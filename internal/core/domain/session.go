package domain

// SessionState represents the lifecycle state of a browser session.
type SessionState string

const (
	// StateLoading means a persisted token exists but has not yet been
	// validated against the backend.
	StateLoading SessionState = "loading"
	StateAuthenticated   SessionState = "authenticated"
	StateUnauthenticated SessionState = "unauthenticated"
)

// validTransitions defines the allowed state machine transitions.
// Loading resolves exactly once; afterwards the session only moves between
// authenticated and unauthenticated via login/logout.
var validTransitions = map[SessionState][]SessionState{
	StateLoading:         {StateAuthenticated, StateUnauthenticated},
	StateAuthenticated:   {StateUnauthenticated},
	StateUnauthenticated: {StateAuthenticated},
}

// CanTransitionTo reports whether a transition from the current state to next is valid.
func (s SessionState) CanTransitionTo(next SessionState) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Session is the per-browser record of the current identity.
//
// Invariant: State == StateAuthenticated exactly when User != nil.
// A non-empty Token never implies validity; it must be checked against the
// backend before the session is marked authenticated.
type Session struct {
	ID    string       `json:"id"`
	State SessionState `json:"state"`
	Token string       `json:"token,omitempty"`
	User  *UserProfile `json:"user,omitempty"`
}

// NewSession returns a fresh session. A non-empty persisted token starts the
// session in the loading state; otherwise it is unauthenticated immediately.
func NewSession(id, token string) *Session {
	s := &Session{ID: id, State: StateUnauthenticated}
	if token != "" {
		s.Token = token
		s.State = StateLoading
	}
	return s
}

// Authenticated reports whether the session holds a validated user.
func (s *Session) Authenticated() bool {
	return s.State == StateAuthenticated && s.User != nil
}

// Reset drops the token and user, leaving the session unauthenticated.
// Safe to call on an already unauthenticated session.
func (s *Session) Reset() {
	s.Token = ""
	s.User = nil
	s.State = StateUnauthenticated
}
