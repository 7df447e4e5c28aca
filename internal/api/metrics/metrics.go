// Package metrics defines and registers all custom Prometheus metrics for
// gatehouse. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gatehouse"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "invalid" (missing field / mismatch), or "conflict"
//     (email already registered)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (missing or invalid credentials)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionRestoresTotal counts session-cookie restorations on protected routes.
// Label:
//   - result: "hit" (account restored) or "miss" (absent, invalid, or expired
//     token)
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restoration attempts, by result.",
	},
	[]string{"result"},
)
