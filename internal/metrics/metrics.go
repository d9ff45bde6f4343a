// Package metrics exposes Prometheus instrumentation for the
// recommendation engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/taskan-dev/taskan/internal/domain"
)

var (
	advisoriesEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisories_emitted_total",
			Help: "Total number of advisories emitted, by type and severity",
		},
		[]string{"type", "severity"},
	)

	evaluationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_evaluations_total",
			Help: "Total number of board evaluations",
		},
	)

	evaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_evaluation_duration_seconds",
			Help:    "Board evaluation duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)
)

// ObserveEvaluation records one engine run and its emitted advisories.
func ObserveEvaluation(advisories []domain.Advisory, elapsed time.Duration) {
	evaluationsTotal.Inc()
	evaluationDuration.Observe(elapsed.Seconds())
	for _, a := range advisories {
		advisoriesEmitted.WithLabelValues(string(a.Type), string(a.Severity)).Inc()
	}
}
