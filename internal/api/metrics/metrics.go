// Package metrics defines and registers all custom Prometheus metrics for the
// eye-know API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eyeknow"

// SignInsTotal counts credential sign-in attempts.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of credential sign-in attempts, by result.",
	},
	[]string{"result"},
)

// SessionsIssuedTotal counts sessions registered in the store. Each sign-in
// mints a fresh token, so this also counts issued tokens.
var SessionsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of session tokens issued.",
	},
)

// GateDecisionsTotal counts auth-gate outcomes on protected routes.
// Label:
//   - result: "allow", "deny_no_token", "deny_invalid", or "error"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of auth gate decisions, by result.",
	},
	[]string{"result"},
)

// RecognitionsTotal counts image recognition requests.
// Label:
//   - result: "success" or "error"
var RecognitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recognitions_total",
		Help:      "Total number of image recognition requests, by result.",
	},
	[]string{"result"},
)
