// Package metrics defines and registers all custom Prometheus metrics for the
// ClassFlow gateway. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "classflow"

// ── Backend client metrics ────────────────────────────────────────────────────

// BackendRequestsTotal counts calls the gateway issues to the ClassFlow REST
// backend.
// Labels:
//   - resource: first path segment of the call (e.g. "auth", "events")
//   - method: HTTP method
//   - outcome: "ok", "api_error" (non-2xx with a body), or "transport_error"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests issued to the ClassFlow backend.",
	},
	[]string{"resource", "method", "outcome"},
)

// BackendRequestDuration measures end-to-end latency of backend calls.
// Label:
//   - resource: first path segment of the call
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of requests to the ClassFlow backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts through the session manager.
// Label:
//   - outcome: "ok" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// TokenValidationsTotal counts persisted-token validations at session start.
// Label:
//   - outcome: "valid", "invalid", or "skipped" (no persisted token)
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of persisted-token validations at session start.",
	},
	[]string{"outcome"},
)

// GuardRedirectsTotal counts route-guard redirects.
// Label:
//   - guard: "protected" (redirect to sign-in) or "public" (redirect home)
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of route-guard redirects, by guard kind.",
	},
	[]string{"guard"},
)
