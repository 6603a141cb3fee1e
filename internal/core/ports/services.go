package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/classflow/gateway/internal/core/domain"
)

// Envelope is the normalized wrapper resource services return on success,
// regardless of the backend response shape. Failures are returned as plain
// errors instead, never as a false envelope.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// TodayStats is the derived breakdown of a single day's events.
type TodayStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Classes   int `json:"classes"`
	Tasks     int `json:"tasks"`
	Exams     int `json:"exams"`
	Meetings  int `json:"meetings"`
	Upcoming  int `json:"upcomingCount"`
}

// EventService wraps the backend events resource plus its pure read
// projections. Every mutation is a direct pass-through; callers re-fetch.
type EventService interface {
	List(ctx context.Context, token string) (*Envelope, error)
	Get(ctx context.Context, token, id string) (*Envelope, error)
	Create(ctx context.Context, token string, ev domain.Event) (*Envelope, error)
	Update(ctx context.Context, token, id string, ev domain.Event) (*Envelope, error)
	Delete(ctx context.Context, token, id string) (*Envelope, error)
	ToggleComplete(ctx context.Context, token, id string) (*Envelope, error)
	EventsOnDay(ctx context.Context, token string, day time.Time) (*Envelope, error)
	UpcomingDeadlines(ctx context.Context, token string, limit int) (*Envelope, error)
	TodayStats(ctx context.Context, token string, now time.Time) (*Envelope, error)
	CountForDay(ctx context.Context, token string, day time.Time) (*Envelope, error)
}

// TimetableService wraps the backend timetable resource.
type TimetableService interface {
	List(ctx context.Context, token string) (*Envelope, error)
	Create(ctx context.Context, token string, entry domain.TimetableEntry) (*Envelope, error)
	Update(ctx context.Context, token, id string, entry domain.TimetableEntry) (*Envelope, error)
	Delete(ctx context.Context, token, id string) (*Envelope, error)
	EntriesForDay(ctx context.Context, token string, day time.Weekday) (*Envelope, error)
}

// SubjectRow is the derived per-subject attendance view. Late counts as
// attended.
type SubjectRow struct {
	Subject    string `json:"subject"`
	Attended   int    `json:"attended"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// AttendanceStats is the full derived attendance view.
type AttendanceStats struct {
	Subjects      []SubjectRow `json:"subjects"`
	TotalAttended int          `json:"totalAttended"`
	TotalClasses  int          `json:"totalClasses"`
	Overall       int          `json:"overallPercentage"`
}

// AttendanceService wraps the backend attendance resource plus the derived
// stats reduction.
type AttendanceService interface {
	List(ctx context.Context, token string) (*Envelope, error)
	Mark(ctx context.Context, token string, rec domain.AttendanceRecord) (*Envelope, error)
	Delete(ctx context.Context, token, id string) (*Envelope, error)
	Stats(ctx context.Context, token string) (*Envelope, error)
}

// AnalyticsReport carries the results of the independently fallible analytics
// reads. A failed arm leaves its data empty and contributes to Errors; it
// never blocks the other arm.
type AnalyticsReport struct {
	Procrastination json.RawMessage `json:"procrastination,omitempty"`
	Burnout         json.RawMessage `json:"burnout,omitempty"`
	Errors          []string        `json:"errors,omitempty"`
}

// PlannerService wraps the backend AI planner resource.
type PlannerService interface {
	StudyPlan(ctx context.Context, token string, date time.Time) (*Envelope, error)
	DailyWorkload(ctx context.Context, token string, date time.Time) (*Envelope, error)
	Overcommitment(ctx context.Context, token string, date time.Time) (*Envelope, error)
	Analytics(ctx context.Context, token string, burnoutDays int) (*Envelope, error)
}
