package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/classflow/gateway/internal/core/domain"
	"github.com/classflow/gateway/internal/core/ports"
)

// EventService wraps the backend events resource. Mutations are direct
// pass-throughs; read projections are pure reductions over a single fetch.
type EventService struct {
	api ports.EventAPI
	log zerolog.Logger
}

func NewEventService(api ports.EventAPI, log zerolog.Logger) *EventService {
	return &EventService{api: api, log: log}
}

func (s *EventService) List(ctx context.Context, token string) (*ports.Envelope, error) {
	events, err := s.api.List(ctx, token)
	if err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Data: events}, nil
}

func (s *EventService) Get(ctx context.Context, token, id string) (*ports.Envelope, error) {
	ev, err := s.api.Get(ctx, token, id)
	if err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Data: ev}, nil
}

func (s *EventService) Create(ctx context.Context, token string, ev domain.Event) (*ports.Envelope, error) {
	created, err := s.api.Create(ctx, token, ev)
	if err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Data: created}, nil
}

func (s *EventService) Update(ctx context.Context, token, id string, ev domain.Event) (*ports.Envelope, error) {
	updated, err := s.api.Update(ctx, token, id, ev)
	if err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Data: updated}, nil
}

func (s *EventService) Delete(ctx context.Context, token, id string) (*ports.Envelope, error) {
	if err := s.api.Delete(ctx, token, id); err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Message: "event deleted"}, nil
}

func (s *EventService) ToggleComplete(ctx context.Context, token, id string) (*ports.Envelope, error) {
	toggled, err := s.api.ToggleComplete(ctx, token, id)
	if err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Data: toggled}, nil
}

func (s *EventService) EventsOnDay(ctx context.Context, token string, day time.Time) (*ports.Envelope, error) {
	events, err := s.api.List(ctx, token)
	if err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Data: eventsOn(events, day)}, nil
}

func (s *EventService) UpcomingDeadlines(ctx context.Context, token string, limit int) (*ports.Envelope, error) {
	events, err := s.api.List(ctx, token)
	if err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Data: upcomingDeadlines(events, time.Now(), limit)}, nil
}

func (s *EventService) TodayStats(ctx context.Context, token string, now time.Time) (*ports.Envelope, error) {
	events, err := s.api.List(ctx, token)
	if err != nil {
		return nil, err
	}
	stats := todayStats(events, now)
	return &ports.Envelope{Success: true, Data: &stats}, nil
}

type dayCount struct {
	Count int `json:"count"`
}

func (s *EventService) CountForDay(ctx context.Context, token string, day time.Time) (*ports.Envelope, error) {
	events, err := s.api.List(ctx, token)
	if err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Data: dayCount{Count: len(eventsOn(events, day))}}, nil
}

// eventsOn keeps the events starting on the given calendar day.
func eventsOn(events []domain.Event, day time.Time) []domain.Event {
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if e.OccursOn(day) {
			out = append(out, e)
		}
	}
	return out
}

// todayStats reduces one day's events to the overview counters.
func todayStats(events []domain.Event, now time.Time) ports.TodayStats {
	var st ports.TodayStats
	for _, e := range eventsOn(events, now) {
		st.Total++
		if e.Completed {
			st.Completed++
		} else {
			st.Pending++
		}
		switch e.Type {
		case domain.EventClass:
			st.Classes++
		case domain.EventAssignment, domain.EventDeadline:
			st.Tasks++
		case domain.EventExam:
			st.Exams++
		case domain.EventMeeting:
			st.Meetings++
		}
		if e.StartTime.After(now) {
			st.Upcoming++
		}
	}
	return st
}

// upcomingDeadlines returns future deadline events, soonest first, capped at
// limit when limit > 0.
func upcomingDeadlines(events []domain.Event, now time.Time, limit int) []domain.Event {
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if e.Type == domain.EventDeadline && e.StartTime.After(now) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
