// Package observability records search outcomes as Prometheus metrics on a
// private registry so repeated runs in one process never collide.
package observability

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Outcome labels.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
)

// Recorder owns a registry and the srsearch collectors.
type Recorder struct {
	registry *prometheus.Registry

	searches *prometheus.CounterVec
	explored *prometheus.CounterVec
	switches prometheus.Counter
	duration *prometheus.HistogramVec
}

// NewRecorder builds a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "srsearch_searches_total",
			Help: "Completed searches by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		explored: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "srsearch_nodes_explored_total",
			Help: "Frontier items popped, by engine.",
		}, []string{"engine"}),
		switches: factory.NewCounter(prometheus.CounterOpts{
			Name: "srsearch_strategy_switches_total",
			Help: "Threshold-driven switches between DFS and BFS.",
		}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "srsearch_search_duration_seconds",
			Help:    "Wall time of a single search.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"strategy"}),
	}
}

// ObserveSearch counts one finished search and its duration.
func (r *Recorder) ObserveSearch(strategy string, found bool, d time.Duration) {
	outcome := OutcomeNotFound
	if found {
		outcome = OutcomeFound
	}
	r.searches.WithLabelValues(strategy, outcome).Inc()
	r.duration.WithLabelValues(strategy).Observe(d.Seconds())
}

// AddExplored adds n popped items for engine ("dfs" or "bfs").
func (r *Recorder) AddExplored(engine string, n int) {
	if n > 0 {
		r.explored.WithLabelValues(engine).Add(float64(n))
	}
}

// AddSwitches adds n strategy switches.
func (r *Recorder) AddSwitches(n int) {
	if n > 0 {
		r.switches.Add(float64(n))
	}
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteText writes every gathered family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("observability: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("observability: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
