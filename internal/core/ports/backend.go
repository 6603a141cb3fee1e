package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/classflow/gateway/internal/core/domain"
)

// Credentials is the transient login input; never retained after the call.
type Credentials struct {
	Email    string
	Password string
}

// RegistrationInput is the transient sign-up input.
type RegistrationInput struct {
	Name     string
	Email    string
	Password string
}

// AuthPayload is the raw backend response shape for the /auth endpoints:
// any combination of {token, user, message}.
type AuthPayload struct {
	Token   string              `json:"token,omitempty"`
	User    *domain.UserProfile `json:"user,omitempty"`
	Message string              `json:"message,omitempty"`
}

// AuthAPI is the backend /auth/* resource.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (*AuthPayload, error)
	GoogleLogin(ctx context.Context, credential string) (*AuthPayload, error)
	Register(ctx context.Context, input RegistrationInput) (*AuthPayload, error)
	Me(ctx context.Context, token string) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, token string, profile domain.UserProfile) (*domain.UserProfile, error)
	ForgotPassword(ctx context.Context, email string) (*AuthPayload, error)
	ResetPassword(ctx context.Context, email, otp, newPassword string) (*AuthPayload, error)
}

// EventAPI is the backend /events resource.
type EventAPI interface {
	List(ctx context.Context, token string) ([]domain.Event, error)
	Get(ctx context.Context, token, id string) (*domain.Event, error)
	Create(ctx context.Context, token string, ev domain.Event) (*domain.Event, error)
	Update(ctx context.Context, token, id string, ev domain.Event) (*domain.Event, error)
	Delete(ctx context.Context, token, id string) error
	ToggleComplete(ctx context.Context, token, id string) (*domain.Event, error)
}

// TimetableAPI is the backend /timetable resource.
type TimetableAPI interface {
	List(ctx context.Context, token string) ([]domain.TimetableEntry, error)
	Create(ctx context.Context, token string, entry domain.TimetableEntry) (*domain.TimetableEntry, error)
	Update(ctx context.Context, token, id string, entry domain.TimetableEntry) (*domain.TimetableEntry, error)
	Delete(ctx context.Context, token, id string) error
}

// AttendanceAPI is the backend /attendance resource.
type AttendanceAPI interface {
	List(ctx context.Context, token string) ([]domain.AttendanceRecord, error)
	Mark(ctx context.Context, token string, rec domain.AttendanceRecord) (*domain.AttendanceRecord, error)
	Delete(ctx context.Context, token, id string) error
	Stats(ctx context.Context, token string) (map[string]domain.SubjectTally, error)
}

// PlannerAPI is the backend /ai/* resource. Responses are rendered as-is by
// the study-plan viewer, so they stay opaque JSON.
type PlannerAPI interface {
	StudyPlan(ctx context.Context, token string, date time.Time) (json.RawMessage, error)
	DailyWorkload(ctx context.Context, token string, date time.Time) (json.RawMessage, error)
	Overcommitment(ctx context.Context, token string, date time.Time) (json.RawMessage, error)
	Procrastination(ctx context.Context, token string) (json.RawMessage, error)
	Burnout(ctx context.Context, token string, days int) (json.RawMessage, error)
}
