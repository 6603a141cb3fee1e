package service

import (
	"context"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/classflow/gateway/internal/core/domain"
	"github.com/classflow/gateway/internal/core/ports"
)

// AttendanceService wraps the backend attendance resource and derives the
// per-subject and overall percentages from the backend tallies.
type AttendanceService struct {
	api ports.AttendanceAPI
	log zerolog.Logger
}

func NewAttendanceService(api ports.AttendanceAPI, log zerolog.Logger) *AttendanceService {
	return &AttendanceService{api: api, log: log}
}

func (s *AttendanceService) List(ctx context.Context, token string) (*ports.Envelope, error) {
	records, err := s.api.List(ctx, token)
	if err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Data: records}, nil
}

func (s *AttendanceService) Mark(ctx context.Context, token string, rec domain.AttendanceRecord) (*ports.Envelope, error) {
	marked, err := s.api.Mark(ctx, token, rec)
	if err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Data: marked}, nil
}

func (s *AttendanceService) Delete(ctx context.Context, token, id string) (*ports.Envelope, error) {
	if err := s.api.Delete(ctx, token, id); err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Message: "record deleted"}, nil
}

func (s *AttendanceService) Stats(ctx context.Context, token string) (*ports.Envelope, error) {
	tallies, err := s.api.Stats(ctx, token)
	if err != nil {
		return nil, err
	}
	stats := deriveStats(tallies)
	return &ports.Envelope{Success: true, Data: &stats}, nil
}

// deriveStats is a pure reduction over the backend tallies. Late counts as
// attended; an empty subject tallies to 0%.
func deriveStats(tallies map[string]domain.SubjectTally) ports.AttendanceStats {
	var stats ports.AttendanceStats
	stats.Subjects = make([]ports.SubjectRow, 0, len(tallies))

	names := make([]string, 0, len(tallies))
	for name := range tallies {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := tallies[name]
		attended := t.Present + t.Late
		stats.Subjects = append(stats.Subjects, ports.SubjectRow{
			Subject:    name,
			Attended:   attended,
			Total:      t.Total,
			Percentage: percentage(attended, t.Total),
		})
		stats.TotalAttended += attended
		stats.TotalClasses += t.Total
	}

	stats.Overall = percentage(stats.TotalAttended, stats.TotalClasses)
	return stats
}

func percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
