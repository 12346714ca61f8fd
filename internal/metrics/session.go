package metrics

import "github.com/prometheus/client_golang/prometheus"

// Interview session lifecycle metrics.
var (
	SessionsStartedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "psyai",
			Name:      "sessions_started_total",
			Help:      "Total number of interview sessions started",
		},
	)

	SessionsCompletedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "psyai",
			Name:      "sessions_completed_total",
			Help:      "Total number of interview sessions completed",
		},
		[]string{"reason"}, // "max_turns" / "early_stop"
	)

	SessionTurnsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "psyai",
			Name:      "session_turns_total",
			Help:      "Total number of interview turns processed",
		},
	)

	EnsembleScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "psyai",
			Name:      "ensemble_score",
			Help:      "Distribution of fused trait scores",
			Buckets:   []float64{1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5},
		},
	)

	ScoringMethodsUsed = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "psyai",
			Name:      "scoring_methods_used",
			Help:      "Number of usable scoring methods per finalized session",
			Buckets:   []float64{0, 1, 2, 3, 4},
		},
	)
)

var sessionMetricsRegistered bool

// RegisterSessionMetrics registers session metrics. Must be called once from main.
func RegisterSessionMetrics() {
	if sessionMetricsRegistered {
		return
	}
	prometheus.MustRegister(SessionsStartedTotal)
	prometheus.MustRegister(SessionsCompletedTotal)
	prometheus.MustRegister(SessionTurnsTotal)
	prometheus.MustRegister(EnsembleScore)
	prometheus.MustRegister(ScoringMethodsUsed)
	sessionMetricsRegistered = true
}
