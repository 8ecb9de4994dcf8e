// Package metrics defines and registers all custom Prometheus metrics for
// the member portal API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "member_portal"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (unknown identifier and wrong password
//     are indistinguishable and both count as "failure")
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts bearer tokens issued after successful logins.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued.",
	},
)

// AuthzDenialsTotal counts authorization denials on protected routes.
// Label:
//   - reason: "unauthenticated" (missing/invalid/expired token),
//     "principal_not_found" (token subject no longer resolves), or
//     "forbidden" (role failed the gate)
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of authorization denials, by reason.",
	},
	[]string{"reason"},
)
