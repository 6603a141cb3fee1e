package domain

import "encoding/json"

// UserProfile models the identity record returned by the backend.
// The gateway treats it as read-only: the session manager replaces it
// wholesale after profile edits, never field by field.
type UserProfile struct {
	ID     json.Number `json:"id,omitempty"`
	Name   string      `json:"name,omitempty"`
	Email  string      `json:"email,omitempty"`
	Avatar string      `json:"avatar,omitempty"`
}
