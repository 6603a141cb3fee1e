// Package backend implements the HTTP client for the remote ClassFlow REST
// API: one shared wrapper that attaches the bearer token and surfaces errors,
// plus one thin client per resource.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/classflow/gateway/internal/api/metrics"
)

const defaultTimeout = 15 * time.Second

// APIError is a backend-reported application error: a non-2xx response
// carrying a message. It propagates untouched to the view layer.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %d: %s", e.Status, e.Message)
}

// Client is the shared HTTP wrapper. It performs no caching and no retries;
// every failure is terminal for that invocation.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New returns a Client for the given base URL. A default timeout is applied
// when none is provided.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// do issues a single JSON request. A non-empty token is attached as a bearer
// credential. When out is non-nil the response body is decoded into it.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resource := resourceOf(path)
	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(resource, method, "transport_error").Inc()
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.BackendRequestsTotal.WithLabelValues(resource, method, "api_error").Inc()
		apiErr := c.apiError(resp)
		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("backend returned error")
		return apiErr
	}
	metrics.BackendRequestsTotal.WithLabelValues(resource, method, "ok").Inc()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: decode %s %s: %w", method, path, err)
	}
	return nil
}

// apiError extracts the backend's message from a non-2xx response. The
// backend answers {"message": ...} on most routes and {"error": ...} on some.
func (c *Client) apiError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); err == nil {
		if json.Unmarshal(b, &payload) == nil {
			msg = payload.Message
			if msg == "" {
				msg = payload.Error
			}
		}
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}

// resourceOf maps a request path to its metrics resource label.
func resourceOf(path string) string {
	p := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		return p[:i]
	}
	return p
}
