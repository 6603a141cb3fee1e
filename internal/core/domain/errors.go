package domain

import "errors"

var (
	// ErrSessionNotFound signals a request carrying a session cookie for
	// which no record exists (expired or never created).
	ErrSessionNotFound = errors.New("session not found")

	// ErrNotAuthenticated signals an operation that requires a validated
	// user on a session that has none.
	ErrNotAuthenticated = errors.New("not authenticated")
)
