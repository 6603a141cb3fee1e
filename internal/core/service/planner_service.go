package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/classflow/gateway/internal/core/ports"
)

const defaultBurnoutDays = 7

// PlannerService wraps the backend AI planner. Responses stay opaque JSON;
// the gateway only routes and combines them.
type PlannerService struct {
	api ports.PlannerAPI
	log zerolog.Logger
}

func NewPlannerService(api ports.PlannerAPI, log zerolog.Logger) *PlannerService {
	return &PlannerService{api: api, log: log}
}

func (s *PlannerService) StudyPlan(ctx context.Context, token string, date time.Time) (*ports.Envelope, error) {
	plan, err := s.api.StudyPlan(ctx, token, date)
	if err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Data: plan}, nil
}

func (s *PlannerService) DailyWorkload(ctx context.Context, token string, date time.Time) (*ports.Envelope, error) {
	workload, err := s.api.DailyWorkload(ctx, token, date)
	if err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Data: workload}, nil
}

func (s *PlannerService) Overcommitment(ctx context.Context, token string, date time.Time) (*ports.Envelope, error) {
	result, err := s.api.Overcommitment(ctx, token, date)
	if err != nil {
		return nil, err
	}
	return &ports.Envelope{Success: true, Data: result}, nil
}

// Analytics issues the procrastination and burnout reads concurrently. Each
// arm is independently fallible: a failure surfaces in the report's Errors
// and never blocks the other arm's result.
func (s *PlannerService) Analytics(ctx context.Context, token string, burnoutDays int) (*ports.Envelope, error) {
	if burnoutDays <= 0 {
		burnoutDays = defaultBurnoutDays
	}

	var (
		report              ports.AnalyticsReport
		procErr, burnoutErr error
		wg                  sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		report.Procrastination, procErr = s.api.Procrastination(ctx, token)
	}()
	go func() {
		defer wg.Done()
		report.Burnout, burnoutErr = s.api.Burnout(ctx, token, burnoutDays)
	}()
	wg.Wait()

	if procErr != nil {
		s.log.Warn().Err(procErr).Msg("procrastination analysis failed")
		report.Errors = append(report.Errors, "procrastination: "+procErr.Error())
	}
	if burnoutErr != nil {
		s.log.Warn().Err(burnoutErr).Msg("burnout analysis failed")
		report.Errors = append(report.Errors, "burnout: "+burnoutErr.Error())
	}

	return &ports.Envelope{Success: true, Data: &report}, nil
}
