package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/classflow/gateway/internal/core/domain"
	"github.com/classflow/gateway/internal/core/ports"
)

type stubSessionManager struct {
	loginPayload *ports.AuthPayload
	loginErr     error

	loginCalls    int
	registerCalls int
	logoutCalls   int
}

func (m *stubSessionManager) Initialize(_ context.Context, _ *domain.Session) error { return nil }

func (m *stubSessionManager) Login(_ context.Context, sess *domain.Session, _ ports.Credentials) (*ports.AuthPayload, error) {
	m.loginCalls++
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	if m.loginPayload.User != nil {
		sess.User = m.loginPayload.User
		sess.State = domain.StateAuthenticated
	}
	sess.Token = m.loginPayload.Token
	return m.loginPayload, nil
}

func (m *stubSessionManager) GoogleLogin(_ context.Context, _ *domain.Session, _ string) (*ports.AuthPayload, error) {
	m.loginCalls++
	return m.loginPayload, m.loginErr
}

func (m *stubSessionManager) Register(_ context.Context, _ ports.RegistrationInput) (*ports.AuthPayload, error) {
	m.registerCalls++
	return &ports.AuthPayload{Message: "account created"}, nil
}

func (m *stubSessionManager) Logout(_ context.Context, sess *domain.Session) error {
	m.logoutCalls++
	sess.Reset()
	return nil
}

func (m *stubSessionManager) UpdateUser(_ context.Context, sess *domain.Session, profile domain.UserProfile) error {
	if !sess.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	sess.User = &profile
	return nil
}

func (m *stubSessionManager) ForgotPassword(_ context.Context, _ string) (*ports.AuthPayload, error) {
	return &ports.AuthPayload{Message: "OTP sent"}, nil
}

func (m *stubSessionManager) ResetPassword(_ context.Context, _, _, _ string) (*ports.AuthPayload, error) {
	return &ports.AuthPayload{Message: "password updated"}, nil
}

func TestLogin_InvalidEmailRejectedBeforeBackend(t *testing.T) {
	manager := &stubSessionManager{}
	h := NewAuthHandler(manager)

	c, _ := authedContext(t, http.MethodPost, "/api/v1/auth/login",
		`{"email":"not-an-email","password":"secret"}`)

	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if manager.loginCalls != 0 {
		t.Fatalf("invalid credentials must never reach the backend, got %d calls", manager.loginCalls)
	}
}

func TestLogin_Success(t *testing.T) {
	manager := &stubSessionManager{loginPayload: &ports.AuthPayload{
		Token: "t1",
		User:  &domain.UserProfile{ID: "1", Name: "A", Email: "a@b.com"},
	}}
	h := NewAuthHandler(manager)

	c, rec := authedContext(t, http.MethodPost, "/api/v1/auth/login",
		`{"email":"a@b.com","password":"x"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload ports.AuthPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Token != "t1" || payload.User == nil || payload.User.Name != "A" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	manager := &stubSessionManager{}
	h := NewAuthHandler(manager)

	c, _ := authedContext(t, http.MethodPost, "/api/v1/auth/register",
		`{"name":"A","email":"a@b.com","password":"123"}`)

	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if manager.registerCalls != 0 {
		t.Fatalf("expected no backend calls, got %d", manager.registerCalls)
	}
}

func TestRegister_SuccessIs201(t *testing.T) {
	manager := &stubSessionManager{}
	h := NewAuthHandler(manager)

	c, rec := authedContext(t, http.MethodPost, "/api/v1/auth/register",
		`{"name":"A","email":"a@b.com","password":"secret"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if manager.registerCalls != 1 {
		t.Fatalf("expected one register call, got %d", manager.registerCalls)
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	manager := &stubSessionManager{}
	h := NewAuthHandler(manager)

	c, rec := authedContext(t, http.MethodPost, "/api/v1/auth/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if manager.logoutCalls != 1 {
		t.Fatalf("expected one logout call, got %d", manager.logoutCalls)
	}
}

func TestSession_ReportsStateAndUser(t *testing.T) {
	h := NewAuthHandler(&stubSessionManager{})

	c, rec := authedContext(t, http.MethodGet, "/api/v1/session", "")

	if err := h.Session(c); err != nil {
		t.Fatalf("session: %v", err)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.State != string(domain.StateAuthenticated) {
		t.Fatalf("expected authenticated state, got %q", resp.State)
	}
	if resp.User == nil || resp.User.Name != "A" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

func TestResetPassword_BadOTPLengthRejected(t *testing.T) {
	h := NewAuthHandler(&stubSessionManager{})

	c, _ := authedContext(t, http.MethodPost, "/api/v1/auth/reset-password",
		`{"email":"a@b.com","otp":"123","newPassword":"secret"}`)

	err := h.ResetPassword(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}
