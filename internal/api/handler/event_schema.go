package handler

import (
	"time"

	"github.com/classflow/gateway/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type eventRequest struct {
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description"`
	Type        string    `json:"type"        validate:"required,oneof=class assignment exam meeting deadline personal"`
	Priority    string    `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"startTime"   validate:"required"`
	EndTime     time.Time `json:"endTime"`
	Completed   bool      `json:"completed"`
}

func (r eventRequest) toDomain() domain.Event {
	return domain.Event{
		Title:       r.Title,
		Description: r.Description,
		Type:        domain.EventType(r.Type),
		Priority:    r.Priority,
		Location:    r.Location,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Completed:   r.Completed,
	}
}
