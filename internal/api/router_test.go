package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/classflow/gateway/internal/core/domain"
	"github.com/classflow/gateway/internal/infrastructure/backend"
	"github.com/classflow/gateway/internal/infrastructure/session"
	"github.com/classflow/gateway/internal/pkg/config"
)

func newTestRouter(t *testing.T, backendHandler http.Handler) (http.Handler, *session.MemoryStore) {
	t.Helper()

	srv := httptest.NewServer(backendHandler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Port: "0",
		Env:  "test",
		Session: config.SessionConfig{
			CookieName: "classflow_sid",
			TTL:        time.Hour,
		},
	}

	store := session.NewMemoryStore()
	bc := backend.New(srv.URL, time.Second, zerolog.Nop())
	return NewRouter(cfg, nil, store, bc, zerolog.Nop()), store
}

func seedAuthenticated(t *testing.T, store *session.MemoryStore) *http.Cookie {
	t.Helper()
	sess := domain.NewSession("s1", "")
	sess.Token = "t1"
	sess.User = &domain.UserProfile{ID: "1", Name: "A", Email: "a@b.com"}
	sess.State = domain.StateAuthenticated
	if err := store.Save(context.Background(), sess, time.Hour); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return &http.Cookie{Name: "classflow_sid", Value: "s1"}
}

func TestRouter_AnonymousVisitorRedirectedFromProtectedPage(t *testing.T) {
	router, _ := newTestRouter(t, http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/auth" {
		t.Fatalf("expected redirect to /auth, got %q", loc)
	}
	if !strings.Contains(rec.Header().Get("Set-Cookie"), "classflow_sid=") {
		t.Fatalf("expected a fresh session cookie")
	}
}

func TestRouter_AuthenticatedVisitorRedirectedFromSignIn(t *testing.T) {
	router, store := newTestRouter(t, http.NotFoundHandler())
	cookie := seedAuthenticated(t, store)

	req := httptest.NewRequest(http.MethodGet, "/auth", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect home, got %q", loc)
	}
}

func TestRouter_APIWithoutSessionIs401NotRedirect(t *testing.T) {
	router, _ := newTestRouter(t, http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "" {
		t.Fatalf("API routes must not redirect, got %q", loc)
	}
}

func TestRouter_LoginFlowEndToEnd(t *testing.T) {
	backendHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"t1","user":{"id":1,"name":"A","email":"a@b.com"}}`))
	})
	router, _ := newTestRouter(t, backendHandler)

	// Anonymous login request: the gateway issues a cookie and binds the
	// authenticated identity to it.
	body := strings.NewReader(`{"email":"a@b.com","password":"x"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	res := rec.Result()
	var cookie *http.Cookie
	for _, ck := range res.Cookies() {
		if ck.Name == "classflow_sid" {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatalf("expected session cookie")
	}

	// The session endpoint now reports the authenticated identity.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		State string `json:"state"`
		User  *struct {
			Name string `json:"name"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if resp.State != "authenticated" || resp.User == nil || resp.User.Name != "A" {
		t.Fatalf("unexpected session view: %+v", resp)
	}

	// A previously protected page is now reachable without a redirect.
	req = httptest.NewRequest(http.MethodGet, "/events", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code == http.StatusSeeOther {
		t.Fatalf("authenticated session must not be redirected")
	}
}

func TestRouter_LogoutThenProtectedPageRedirects(t *testing.T) {
	router, store := newTestRouter(t, http.NotFoundHandler())
	cookie := seedAuthenticated(t, store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after logout, got %d", rec.Code)
	}
}

func TestRouter_HealthLiveness(t *testing.T) {
	router, _ := newTestRouter(t, http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
