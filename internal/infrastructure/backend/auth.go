package backend

import (
	"context"
	"net/http"

	"github.com/classflow/gateway/internal/core/domain"
	"github.com/classflow/gateway/internal/core/ports"
)

// AuthClient implements ports.AuthAPI over the REST backend.
type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

func (a *AuthClient) Login(ctx context.Context, creds ports.Credentials) (*ports.AuthPayload, error) {
	body := map[string]string{"email": creds.Email, "password": creds.Password}
	var out ports.AuthPayload
	if err := a.c.do(ctx, http.MethodPost, "/auth/login", "", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthClient) GoogleLogin(ctx context.Context, credential string) (*ports.AuthPayload, error) {
	body := map[string]string{"credential": credential}
	var out ports.AuthPayload
	if err := a.c.do(ctx, http.MethodPost, "/auth/google", "", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthClient) Register(ctx context.Context, input ports.RegistrationInput) (*ports.AuthPayload, error) {
	body := map[string]string{
		"name":     input.Name,
		"email":    input.Email,
		"password": input.Password,
	}
	var out ports.AuthPayload
	if err := a.c.do(ctx, http.MethodPost, "/auth/register", "", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me validates the token by fetching the profile it belongs to.
func (a *AuthClient) Me(ctx context.Context, token string) (*domain.UserProfile, error) {
	var out domain.UserProfile
	if err := a.c.do(ctx, http.MethodGet, "/auth/me", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthClient) UpdateProfile(ctx context.Context, token string, profile domain.UserProfile) (*domain.UserProfile, error) {
	var out domain.UserProfile
	if err := a.c.do(ctx, http.MethodPut, "/auth/me", token, nil, profile, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthClient) ForgotPassword(ctx context.Context, email string) (*ports.AuthPayload, error) {
	body := map[string]string{"email": email}
	var out ports.AuthPayload
	if err := a.c.do(ctx, http.MethodPost, "/auth/forgot-password", "", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthClient) ResetPassword(ctx context.Context, email, otp, newPassword string) (*ports.AuthPayload, error) {
	body := map[string]string{
		"email":       email,
		"otp":         otp,
		"newPassword": newPassword,
	}
	var out ports.AuthPayload
	if err := a.c.do(ctx, http.MethodPost, "/auth/reset-password", "", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
