package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/classflow/gateway/internal/core/domain"
)

type stubTimetableAPI struct {
	entries []domain.TimetableEntry
}

func (a *stubTimetableAPI) List(_ context.Context, _ string) ([]domain.TimetableEntry, error) {
	return a.entries, nil
}

func (a *stubTimetableAPI) Create(_ context.Context, _ string, entry domain.TimetableEntry) (*domain.TimetableEntry, error) {
	entry.ID = "new"
	a.entries = append(a.entries, entry)
	return &entry, nil
}

func (a *stubTimetableAPI) Update(_ context.Context, _, id string, entry domain.TimetableEntry) (*domain.TimetableEntry, error) {
	entry.ID = id
	return &entry, nil
}

func (a *stubTimetableAPI) Delete(_ context.Context, _, _ string) error { return nil }

func TestEntriesForDay_FiltersAndSortsByStartTime(t *testing.T) {
	api := &stubTimetableAPI{entries: []domain.TimetableEntry{
		{ID: "1", CourseName: "Physics", DaysOfWeek: []int{1, 3}, StartTime: "14:00", EndTime: "15:30"},
		{ID: "2", CourseName: "Math", DaysOfWeek: []int{1}, StartTime: "09:00", EndTime: "10:30"},
		{ID: "3", CourseName: "History", DaysOfWeek: []int{2}, StartTime: "11:00", EndTime: "12:00"},
	}}
	svc := NewTimetableService(api, zerolog.Nop())

	env, err := svc.EntriesForDay(context.Background(), "t1", time.Monday)
	if err != nil {
		t.Fatalf("entries for day: %v", err)
	}
	got := env.Data.([]domain.TimetableEntry)
	if len(got) != 2 {
		t.Fatalf("expected 2 Monday entries, got %d", len(got))
	}
	if got[0].CourseName != "Math" || got[1].CourseName != "Physics" {
		t.Fatalf("expected earliest-first order, got %+v", got)
	}
}

func TestEntriesForDay_NoMatches(t *testing.T) {
	api := &stubTimetableAPI{entries: []domain.TimetableEntry{
		{ID: "1", CourseName: "Math", DaysOfWeek: []int{1}, StartTime: "09:00", EndTime: "10:30"},
	}}
	svc := NewTimetableService(api, zerolog.Nop())

	env, err := svc.EntriesForDay(context.Background(), "t1", time.Sunday)
	if err != nil {
		t.Fatalf("entries for day: %v", err)
	}
	if got := env.Data.([]domain.TimetableEntry); len(got) != 0 {
		t.Fatalf("expected no entries, got %+v", got)
	}
}

func TestTimetableEntry_OccursOn(t *testing.T) {
	entry := domain.TimetableEntry{DaysOfWeek: []int{0, 6}}
	if !entry.OccursOn(time.Sunday) || !entry.OccursOn(time.Saturday) {
		t.Fatalf("expected weekend entry to match Sunday and Saturday")
	}
	if entry.OccursOn(time.Wednesday) {
		t.Fatalf("entry must not match Wednesday")
	}
}
