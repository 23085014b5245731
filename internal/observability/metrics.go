package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthAttempts counts signup/signin attempts by operation and outcome.
	AuthAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mediconnect_auth_attempts_total",
		Help: "Total number of authentication attempts by operation and outcome",
	}, []string{"operation", "outcome"})

	// VerificationDecisions counts admin doctor-verification decisions.
	VerificationDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mediconnect_verification_decisions_total",
		Help: "Total number of doctor verification decisions",
	}, []string{"decision"})

	// CommunityMembershipChanges counts community joins and leaves.
	CommunityMembershipChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mediconnect_community_membership_changes_total",
		Help: "Total number of community membership changes",
	}, []string{"action"})

	// AssistantMessages counts assistant classifications by category.
	AssistantMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mediconnect_assistant_messages_total",
		Help: "Total number of assistant messages classified, by category",
	}, []string{"category"})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mediconnect_redis_error_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mediconnect_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
