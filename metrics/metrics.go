// Package metrics exposes Prometheus instrumentation for walks.
//
// A nil *Walk is valid: every recording method is a no-op on a nil
// receiver, so library callers that do not care about metrics pass nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "antwalk"

// Walk holds the counters and gauges of one walker.
type Walk struct {
	// StepsTotal counts forward moves.
	StepsTotal prometheus.Counter

	// BacktracksTotal counts dead ends resolved by popping the path.
	BacktracksTotal prometheus.Counter

	// ExhaustionsTotal counts walks that backtracked past their start.
	// Labels: policy (halt, clear_exclusions, restart)
	ExhaustionsTotal *prometheus.CounterVec

	// BacktracksPerStep observes how many backtracks one Step needed.
	BacktracksPerStep prometheus.Histogram

	// PathLength is the current length of the walk's path stack.
	PathLength prometheus.Gauge

	// ExclusionsSize is the current number of excluded vertices.
	ExclusionsSize prometheus.Gauge
}

// NewWalk registers the walk metrics with reg. Pass prometheus.DefaultRegisterer
// to expose them on the default /metrics handler, or a fresh registry in tests.
func NewWalk(reg prometheus.Registerer) *Walk {
	f := promauto.With(reg)

	return &Walk{
		StepsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Total number of forward moves made by the walker.",
		}),
		BacktracksTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backtracks_total",
			Help:      "Total number of dead ends resolved by backtracking.",
		}),
		ExhaustionsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "path_exhaustions_total",
			Help:      "Total number of times the walk backtracked past its start vertex.",
		}, []string{"policy"}),
		BacktracksPerStep: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backtracks_per_step",
			Help:      "Number of backtracks needed to complete one step.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		}),
		PathLength: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "path_length",
			Help:      "Current number of vertices on the walk's path stack.",
		}),
		ExclusionsSize: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "exclusions_size",
			Help:      "Current number of vertices in the bounded exclusion set.",
		}),
	}
}

// RecordBacktracks adds n resolved dead ends to BacktracksTotal. The walker
// calls it wherever it updates its own backtrack count, so the counter and
// the walker's stats never drift apart.
func (m *Walk) RecordBacktracks(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.BacktracksTotal.Add(float64(n))
}

// RecordStep records one completed Step. backtracks is the number of dead
// ends the whole step resolved, including those before a path exhaustion;
// it feeds the histogram only (see RecordBacktracks for the counter).
func (m *Walk) RecordStep(backtracks, pathLen, exclusions int) {
	if m == nil {
		return
	}
	m.StepsTotal.Inc()
	m.BacktracksPerStep.Observe(float64(backtracks))
	m.PathLength.Set(float64(pathLen))
	m.ExclusionsSize.Set(float64(exclusions))
}

// RecordExhaustion records a path exhaustion handled with policy.
func (m *Walk) RecordExhaustion(policy string) {
	if m == nil {
		return
	}
	m.ExhaustionsTotal.WithLabelValues(policy).Inc()
}
