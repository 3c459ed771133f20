// Package metrics defines and registers all custom Prometheus metrics for the
// Mociber booking API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts account-creation attempts.
// Label:
//   - result: "created", "conflict", or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of sign-up attempts, by result.",
	},
	[]string{"result"},
)

// ── Submission metrics ────────────────────────────────────────────────────────

// SubmissionsTotal counts submission attempts that reached a terminal outcome.
// Labels:
//   - service_type: the resolved catalog key (e.g. "plumbing")
//   - outcome: "submitted" or "duplicate"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of request submissions, by service type and outcome.",
	},
	[]string{"service_type", "outcome"},
)

// SubmissionBestEffortFailures counts swallowed failures inside the
// submission flow. These never surface to the customer.
// Label:
//   - step: "storage" or "webhook"
var SubmissionBestEffortFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submission_best_effort_failures_total",
		Help:      "Total number of swallowed storage/webhook failures during submission.",
	},
	[]string{"step"},
)

// SubmissionDuration measures how long one submission attempt takes end-to-end,
// including the duplicate check, the write, and the webhook call.
// Label:
//   - outcome: "submitted", "duplicate", or "rejected"
var SubmissionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "submission_duration_seconds",
		Help:      "Duration of a submission attempt from validation to terminal outcome.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)
