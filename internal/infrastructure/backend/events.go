package backend

import (
	"context"
	"net/http"

	"github.com/classflow/gateway/internal/core/domain"
)

// EventClient implements ports.EventAPI over the REST backend. List endpoints
// return raw arrays; mutations return the affected record.
type EventClient struct {
	c *Client
}

func NewEventClient(c *Client) *EventClient {
	return &EventClient{c: c}
}

func (e *EventClient) List(ctx context.Context, token string) ([]domain.Event, error) {
	var out []domain.Event
	if err := e.c.do(ctx, http.MethodGet, "/events", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *EventClient) Get(ctx context.Context, token, id string) (*domain.Event, error) {
	var out domain.Event
	if err := e.c.do(ctx, http.MethodGet, "/events/"+id, token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *EventClient) Create(ctx context.Context, token string, ev domain.Event) (*domain.Event, error) {
	var out domain.Event
	if err := e.c.do(ctx, http.MethodPost, "/events", token, nil, ev, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *EventClient) Update(ctx context.Context, token, id string, ev domain.Event) (*domain.Event, error) {
	var out domain.Event
	if err := e.c.do(ctx, http.MethodPut, "/events/"+id, token, nil, ev, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *EventClient) Delete(ctx context.Context, token, id string) error {
	return e.c.do(ctx, http.MethodDelete, "/events/"+id, token, nil, nil, nil)
}

func (e *EventClient) ToggleComplete(ctx context.Context, token, id string) (*domain.Event, error) {
	var out domain.Event
	if err := e.c.do(ctx, http.MethodPatch, "/events/"+id+"/toggle", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
