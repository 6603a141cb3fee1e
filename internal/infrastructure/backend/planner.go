package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// PlannerClient implements ports.PlannerAPI over the REST backend. The AI
// responses are opaque to the gateway and passed through as raw JSON.
type PlannerClient struct {
	c *Client
}

func NewPlannerClient(c *Client) *PlannerClient {
	return &PlannerClient{c: c}
}

func (p *PlannerClient) StudyPlan(ctx context.Context, token string, date time.Time) (json.RawMessage, error) {
	return p.get(ctx, token, "/ai/studyplan", dateQuery(date))
}

func (p *PlannerClient) DailyWorkload(ctx context.Context, token string, date time.Time) (json.RawMessage, error) {
	return p.get(ctx, token, "/ai/daily", dateQuery(date))
}

func (p *PlannerClient) Overcommitment(ctx context.Context, token string, date time.Time) (json.RawMessage, error) {
	return p.get(ctx, token, "/ai/overcommitment", dateQuery(date))
}

func (p *PlannerClient) Procrastination(ctx context.Context, token string) (json.RawMessage, error) {
	return p.get(ctx, token, "/ai/procrastination", nil)
}

func (p *PlannerClient) Burnout(ctx context.Context, token string, days int) (json.RawMessage, error) {
	q := url.Values{"days": {strconv.Itoa(days)}}
	return p.get(ctx, token, "/ai/burnout", q)
}

func (p *PlannerClient) get(ctx context.Context, token, path string, query url.Values) (json.RawMessage, error) {
	var out json.RawMessage
	if err := p.c.do(ctx, http.MethodGet, path, token, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func dateQuery(date time.Time) url.Values {
	if date.IsZero() {
		return nil
	}
	return url.Values{"date": {date.UTC().Format(time.RFC3339)}}
}
