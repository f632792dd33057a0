// Package metrics defines and registers all custom Prometheus metrics for the
// trading journal API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "journal"

// ── Access gate metrics ───────────────────────────────────────────────────────

// AuthChecksTotal counts guard decisions on protected routes.
// Labels:
//   - guard: "user" or "admin"
//   - result: "granted", "unauthenticated", "forbidden" or "error"
var AuthChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_checks_total",
		Help:      "Total number of access gate decisions, by guard and result.",
	},
	[]string{"guard", "result"},
)

// ── Supabase call metrics ─────────────────────────────────────────────────────

// SupabaseRequestDuration measures the round-trip time of every outbound call
// to Supabase.
// Labels:
//   - service: "auth" (GoTrue) or "rest" (PostgREST)
//   - operation: e.g. "get user", "get trade_journals", "patch profiles"
var SupabaseRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "supabase_request_duration_seconds",
		Help:      "Duration of outbound Supabase requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"service", "operation"},
)

// SupabaseErrorsTotal counts failed outbound calls (transport failures and
// non-2xx responses).
var SupabaseErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "supabase_errors_total",
		Help:      "Total number of failed Supabase requests, by service.",
	},
	[]string{"service"},
)

// ── Journal metrics ───────────────────────────────────────────────────────────

// JournalsCreatedTotal counts created journal entries by trade direction.
var JournalsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "journals_created_total",
		Help:      "Total number of journal entries created, by direction.",
	},
	[]string{"direction"},
)
