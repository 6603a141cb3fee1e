package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/classflow/gateway/internal/core/ports"
)

type stubPlannerAPI struct {
	procrastination json.RawMessage
	procErr         error
	burnout         json.RawMessage
	burnoutErr      error
	burnoutDays     int
}

func (a *stubPlannerAPI) StudyPlan(_ context.Context, _ string, _ time.Time) (json.RawMessage, error) {
	return json.RawMessage(`{"plan":[]}`), nil
}

func (a *stubPlannerAPI) DailyWorkload(_ context.Context, _ string, _ time.Time) (json.RawMessage, error) {
	return json.RawMessage(`{"hours":3}`), nil
}

func (a *stubPlannerAPI) Overcommitment(_ context.Context, _ string, _ time.Time) (json.RawMessage, error) {
	return json.RawMessage(`{"overcommitted":false}`), nil
}

func (a *stubPlannerAPI) Procrastination(_ context.Context, _ string) (json.RawMessage, error) {
	return a.procrastination, a.procErr
}

func (a *stubPlannerAPI) Burnout(_ context.Context, _ string, days int) (json.RawMessage, error) {
	a.burnoutDays = days
	return a.burnout, a.burnoutErr
}

func TestAnalytics_BothArmsSucceed(t *testing.T) {
	api := &stubPlannerAPI{
		procrastination: json.RawMessage(`{"score":2}`),
		burnout:         json.RawMessage(`{"risk":"low"}`),
	}
	svc := NewPlannerService(api, zerolog.Nop())

	env, err := svc.Analytics(context.Background(), "t1", 14)
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	report := env.Data.(*ports.AnalyticsReport)

	if string(report.Procrastination) != `{"score":2}` {
		t.Fatalf("unexpected procrastination data: %s", report.Procrastination)
	}
	if string(report.Burnout) != `{"risk":"low"}` {
		t.Fatalf("unexpected burnout data: %s", report.Burnout)
	}
	if len(report.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", report.Errors)
	}
	if api.burnoutDays != 14 {
		t.Fatalf("expected burnout window of 14 days, got %d", api.burnoutDays)
	}
}

func TestAnalytics_OneArmFailsOtherSurvives(t *testing.T) {
	api := &stubPlannerAPI{
		procErr: errors.New("model timeout"),
		burnout: json.RawMessage(`{"risk":"high"}`),
	}
	svc := NewPlannerService(api, zerolog.Nop())

	env, err := svc.Analytics(context.Background(), "t1", 0)
	if err != nil {
		t.Fatalf("a failed arm must not fail the call: %v", err)
	}
	report := env.Data.(*ports.AnalyticsReport)

	if report.Procrastination != nil {
		t.Fatalf("failed arm must leave its data empty, got %s", report.Procrastination)
	}
	if string(report.Burnout) != `{"risk":"high"}` {
		t.Fatalf("surviving arm lost its data: %s", report.Burnout)
	}
	if len(report.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", report.Errors)
	}
	if api.burnoutDays != defaultBurnoutDays {
		t.Fatalf("expected default burnout window, got %d", api.burnoutDays)
	}
}

func TestAnalytics_BothArmsFail(t *testing.T) {
	api := &stubPlannerAPI{
		procErr:    errors.New("model timeout"),
		burnoutErr: errors.New("unavailable"),
	}
	svc := NewPlannerService(api, zerolog.Nop())

	env, err := svc.Analytics(context.Background(), "t1", 7)
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	report := env.Data.(*ports.AnalyticsReport)
	if len(report.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", report.Errors)
	}
}

func TestStudyPlan_WrapsOpaqueJSON(t *testing.T) {
	svc := NewPlannerService(&stubPlannerAPI{}, zerolog.Nop())

	env, err := svc.StudyPlan(context.Background(), "t1", time.Now())
	if err != nil {
		t.Fatalf("study plan: %v", err)
	}
	if !env.Success {
		t.Fatalf("expected success envelope")
	}
	if string(env.Data.(json.RawMessage)) != `{"plan":[]}` {
		t.Fatalf("unexpected data: %v", env.Data)
	}
}
