package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments for benchmark runs.
type Metrics struct {
	RunsTotal          *prometheus.CounterVec
	IterationsTotal    *prometheus.CounterVec
	IterationDuration  *prometheus.HistogramVec
	CrossCheckFailures prometheus.Counter
}

// NewMetrics creates the instruments and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "benchrun_runs_total",
				Help: "Total benchmark runs, by strategy and status",
			},
			[]string{"strategy", "status"},
		),
		IterationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "benchrun_iterations_total",
				Help: "Total timed iterations executed, by strategy",
			},
			[]string{"strategy"},
		),
		IterationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "benchrun_iteration_duration_seconds",
				Help:    "Elapsed time of individual timed iterations",
				Buckets: prometheus.ExponentialBuckets(1e-8, 4, 12),
			},
			[]string{"strategy"},
		),
		CrossCheckFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "benchrun_crosscheck_failures_total",
				Help: "Cross-check disagreements between strategies",
			},
		),
	}

	reg.MustRegister(
		m.RunsTotal,
		m.IterationsTotal,
		m.IterationDuration,
		m.CrossCheckFailures,
	)

	return m
}

// ObserveRun records the timed iterations of one completed strategy run.
func (m *Metrics) ObserveRun(strategy string, elapsed []time.Duration) {
	for _, d := range elapsed {
		m.IterationDuration.WithLabelValues(strategy).Observe(d.Seconds())
	}
	m.IterationsTotal.WithLabelValues(strategy).Add(float64(len(elapsed)))
	m.RunsTotal.WithLabelValues(strategy, "ok").Inc()
}

// StartMetricsServer starts a HTTP server exposing Prometheus metrics.
func StartMetricsServer(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
