package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/classflow/gateway/internal/core/domain"
	"github.com/classflow/gateway/internal/core/ports"
)

// TimetableService wraps the backend timetable resource.
type TimetableService struct {
	api ports.TimetableAPI
	log zerolog.Logger
}

func NewTimetableService(api ports.TimetableAPI, log zerolog.Logger) *TimetableService {
	return &TimetableService{api: api, log: log}
}

func (s *TimetableService) List(ctx context.Context, token string) (*ports.Envelope, error) {
	entries, err := s.api.List(ctx, token)
	if err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Data: entries}, nil
}

func (s *TimetableService) Create(ctx context.Context, token string, entry domain.TimetableEntry) (*ports.Envelope, error) {
	created, err := s.api.Create(ctx, token, entry)
	if err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Data: created}, nil
}

func (s *TimetableService) Update(ctx context.Context, token, id string, entry domain.TimetableEntry) (*ports.Envelope, error) {
	updated, err := s.api.Update(ctx, token, id, entry)
	if err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Data: updated}, nil
}

func (s *TimetableService) Delete(ctx context.Context, token, id string) (*ports.Envelope, error) {
	if err := s.api.Delete(ctx, token, id); err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Message: "entry deleted"}, nil
}

func (s *TimetableService) EntriesForDay(ctx context.Context, token string, day time.Weekday) (*ports.Envelope, error) {
	entries, err := s.api.List(ctx, token)
	if err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Data: entriesOn(entries, day)}, nil
}

// entriesOn keeps the entries scheduled on the given weekday, earliest start
// first. "HH:mm" start times order correctly as strings.
func entriesOn(entries []domain.TimetableEntry, day time.Weekday) []domain.TimetableEntry {
	out := make([]domain.TimetableEntry, 0, len(entries))
	for _, e := range entries {
		if e.OccursOn(day) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}
