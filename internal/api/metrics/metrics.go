// Package metrics defines and registers all custom Prometheus metrics for the
// ProjectHub API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto; the echoprometheus middleware adds per-request HTTP metrics
// on top.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "projecthub"

// SignupsTotal counts accounts created through POST /api/signup.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful user signups.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ProjectsCreatedTotal counts newly created projects.
var ProjectsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created.",
	},
)

// ProjectsDeletedTotal counts deleted projects.
var ProjectsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_deleted_total",
		Help:      "Total number of projects deleted.",
	},
)

// AIRequestsTotal counts proxied AI generation requests.
// Labels:
//   - action: the requested action (e.g. "generate-layout")
//   - result: "success" or "error"
var AIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_requests_total",
		Help:      "Total number of AI proxy requests, by action and result.",
	},
	[]string{"action", "result"},
)

// AIRequestDuration measures end-to-end AI proxy latency including the
// upstream call.
// Label:
//   - action: the requested action
var AIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ai_request_duration_seconds",
		Help:      "Duration of AI proxy requests from receipt to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"action"},
)
