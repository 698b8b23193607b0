package telemetry

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	require.NotNil(t, m)

	// Re-registering the same instruments must panic, proving they landed in
	// the registry.
	assert.Panics(t, func() { reg.MustRegister(m.RunsTotal) })
}

func TestObserveRun(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveRun("flat", []time.Duration{time.Microsecond, 2 * time.Microsecond, 3 * time.Microsecond})

	assert.Equal(t, 3.0, testutil.ToFloat64(m.IterationsTotal.WithLabelValues("flat")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("flat", "ok")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.IterationDuration))
}

func TestCrossCheckFailures(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.CrossCheckFailures.Inc()
	m.CrossCheckFailures.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CrossCheckFailures))
}
