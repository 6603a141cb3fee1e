package backend

import (
	"context"
	"net/http"

	"github.com/classflow/gateway/internal/core/domain"
)

// TimetableClient implements ports.TimetableAPI over the REST backend.
type TimetableClient struct {
	c *Client
}

func NewTimetableClient(c *Client) *TimetableClient {
	return &TimetableClient{c: c}
}

func (t *TimetableClient) List(ctx context.Context, token string) ([]domain.TimetableEntry, error) {
	var out []domain.TimetableEntry
	if err := t.c.do(ctx, http.MethodGet, "/timetable", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *TimetableClient) Create(ctx context.Context, token string, entry domain.TimetableEntry) (*domain.TimetableEntry, error) {
	var out domain.TimetableEntry
	if err := t.c.do(ctx, http.MethodPost, "/timetable", token, nil, entry, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (t *TimetableClient) Update(ctx context.Context, token, id string, entry domain.TimetableEntry) (*domain.TimetableEntry, error) {
	var out domain.TimetableEntry
	if err := t.c.do(ctx, http.MethodPut, "/timetable/"+id, token, nil, entry, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (t *TimetableClient) Delete(ctx context.Context, token, id string) error {
	return t.c.do(ctx, http.MethodDelete, "/timetable/"+id, token, nil, nil, nil)
}
