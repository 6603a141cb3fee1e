package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/classflow/gateway/internal/api/middleware"
	"github.com/classflow/gateway/internal/core/domain"
	"github.com/classflow/gateway/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub event service
// ---------------------------------------------------------------------------

type stubEventService struct {
	createCalls int
	lastCreated domain.Event
}

func (s *stubEventService) List(_ context.Context, _ string) (*ports.Envelope, error) {
	return &ports.Envelope{Success: true, Data: []domain.Event{}}, nil
}

func (s *stubEventService) Get(_ context.Context, _, id string) (*ports.Envelope, error) {
	return &ports.Envelope{Success: true, Data: &domain.Event{ID: id}}, nil
}

func (s *stubEventService) Create(_ context.Context, _ string, ev domain.Event) (*ports.Envelope, error) {
	s.createCalls++
	s.lastCreated = ev
	ev.ID = "created"
	return &ports.Envelope{Success: true, Data: &ev}, nil
}

func (s *stubEventService) Update(_ context.Context, _, id string, ev domain.Event) (*ports.Envelope, error) {
	ev.ID = id
	return &ports.Envelope{Success: true, Data: &ev}, nil
}

func (s *stubEventService) Delete(_ context.Context, _, _ string) (*ports.Envelope, error) {
	return &ports.Envelope{Success: true, Message: "event deleted"}, nil
}

func (s *stubEventService) ToggleComplete(_ context.Context, _, id string) (*ports.Envelope, error) {
	return &ports.Envelope{Success: true, Data: &domain.Event{ID: id, Completed: true}}, nil
}

func (s *stubEventService) EventsOnDay(_ context.Context, _ string, _ time.Time) (*ports.Envelope, error) {
	return &ports.Envelope{Success: true, Data: []domain.Event{}}, nil
}

func (s *stubEventService) UpcomingDeadlines(_ context.Context, _ string, _ int) (*ports.Envelope, error) {
	return &ports.Envelope{Success: true, Data: []domain.Event{}}, nil
}

func (s *stubEventService) TodayStats(_ context.Context, _ string, _ time.Time) (*ports.Envelope, error) {
	return &ports.Envelope{Success: true, Data: &ports.TodayStats{}}, nil
}

func (s *stubEventService) CountForDay(_ context.Context, _ string, _ time.Time) (*ports.Envelope, error) {
	return &ports.Envelope{Success: true, Data: map[string]int{"count": 0}}, nil
}

func authedContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	sess := domain.NewSession("s1", "")
	sess.Token = "t1"
	sess.User = &domain.UserProfile{ID: "1", Name: "A"}
	sess.State = domain.StateAuthenticated
	c.Set(middleware.SessionKey, sess)
	return c, rec
}

// ---------------------------------------------------------------------------
// Create validation
// ---------------------------------------------------------------------------

func TestCreateEvent_EmptyTitleRejectedBeforeBackend(t *testing.T) {
	svc := &stubEventService{}
	h := NewEventHandler(svc)

	c, _ := authedContext(t, http.MethodPost, "/api/v1/events",
		`{"title":"","type":"class","startTime":"2026-03-10T09:00:00Z"}`)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", httpErr.Code)
	}
	if svc.createCalls != 0 {
		t.Fatalf("invalid payload must never reach the backend, got %d calls", svc.createCalls)
	}
}

func TestCreateEvent_UnknownTypeRejected(t *testing.T) {
	svc := &stubEventService{}
	h := NewEventHandler(svc)

	c, _ := authedContext(t, http.MethodPost, "/api/v1/events",
		`{"title":"Lecture","type":"party","startTime":"2026-03-10T09:00:00Z"}`)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if svc.createCalls != 0 {
		t.Fatalf("expected no backend calls, got %d", svc.createCalls)
	}
}

func TestCreateEvent_ValidPayloadSucceeds(t *testing.T) {
	svc := &stubEventService{}
	h := NewEventHandler(svc)

	c, rec := authedContext(t, http.MethodPost, "/api/v1/events",
		`{"title":"Math lecture","type":"class","priority":"high","startTime":"2026-03-10T09:00:00Z"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.createCalls != 1 {
		t.Fatalf("expected one backend call, got %d", svc.createCalls)
	}
	if svc.lastCreated.Title != "Math lecture" || svc.lastCreated.Type != domain.EventClass {
		t.Fatalf("unexpected event: %+v", svc.lastCreated)
	}
}

func TestCreateEvent_MalformedJSONIs400(t *testing.T) {
	svc := &stubEventService{}
	h := NewEventHandler(svc)

	c, _ := authedContext(t, http.MethodPost, "/api/v1/events", `{not json`)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Query parameters
// ---------------------------------------------------------------------------

func TestByDay_InvalidDateIs400(t *testing.T) {
	h := NewEventHandler(&stubEventService{})

	c, _ := authedContext(t, http.MethodGet, "/api/v1/events/day?date=yesterday", "")

	err := h.ByDay(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestDeadlines_NonPositiveLimitIs400(t *testing.T) {
	h := NewEventHandler(&stubEventService{})

	c, _ := authedContext(t, http.MethodGet, "/api/v1/events/deadlines?limit=0", "")

	err := h.Deadlines(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Session requirements
// ---------------------------------------------------------------------------

func TestList_UnauthenticatedSessionIs401(t *testing.T) {
	h := NewEventHandler(&stubEventService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.SessionKey, domain.NewSession("s1", ""))

	err := h.List(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
