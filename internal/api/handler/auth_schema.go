package handler

import "github.com/classflow/gateway/internal/core/domain"

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type googleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	OTP         string `json:"otp"         validate:"required,len=6"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type profileRequest struct {
	Name   string `json:"name" validate:"required"`
	Avatar string `json:"avatar"`
}

// sessionResponse is the session view the client shell polls to decide which
// routes are reachable.
type sessionResponse struct {
	State string              `json:"state"`
	User  *domain.UserProfile `json:"user,omitempty"`
}
