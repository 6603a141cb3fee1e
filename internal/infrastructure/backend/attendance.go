package backend

import (
	"context"
	"net/http"

	"github.com/classflow/gateway/internal/core/domain"
)

// AttendanceClient implements ports.AttendanceAPI over the REST backend.
type AttendanceClient struct {
	c *Client
}

func NewAttendanceClient(c *Client) *AttendanceClient {
	return &AttendanceClient{c: c}
}

func (a *AttendanceClient) List(ctx context.Context, token string) ([]domain.AttendanceRecord, error) {
	var out []domain.AttendanceRecord
	if err := a.c.do(ctx, http.MethodGet, "/attendance", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *AttendanceClient) Mark(ctx context.Context, token string, rec domain.AttendanceRecord) (*domain.AttendanceRecord, error) {
	var out domain.AttendanceRecord
	if err := a.c.do(ctx, http.MethodPost, "/attendance", token, nil, rec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AttendanceClient) Delete(ctx context.Context, token, id string) error {
	return a.c.do(ctx, http.MethodDelete, "/attendance/"+id, token, nil, nil, nil)
}

// Stats returns the backend's per-subject tallies keyed by subject name.
func (a *AttendanceClient) Stats(ctx context.Context, token string) (map[string]domain.SubjectTally, error) {
	var out map[string]domain.SubjectTally
	if err := a.c.do(ctx, http.MethodGet, "/attendance/stats", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
