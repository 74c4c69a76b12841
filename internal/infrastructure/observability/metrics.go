package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "imagetoolbox"

// Metrics is safe to use through a nil pointer, which records nothing.
type Metrics struct {
	engineRuns     *prometheus.CounterVec
	engineDuration *prometheus.HistogramVec
	artifactBytes  *prometheus.HistogramVec
	liveHandles    prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		engineRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "engine_runs_total",
				Help:      "Total number of engine runs by outcome",
			},
			[]string{"engine", "outcome"}, // outcome: success, error, superseded
		),
		engineDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "engine_duration_seconds",
				Help:      "Duration of engine runs in seconds",
				Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"engine"},
		),
		artifactBytes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "artifact_bytes",
				Help:      "Size of derived artifacts in bytes",
				Buckets:   prometheus.ExponentialBuckets(16*1024, 2, 10),
			},
			[]string{"engine"},
		),
		liveHandles: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "live_handles",
				Help:      "Number of artifact handles currently held",
			},
		),
	}

	reg.MustRegister(m.engineRuns, m.engineDuration, m.artifactBytes, m.liveHandles)
	return m
}

func (m *Metrics) ObserveRun(engine, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.engineRuns.WithLabelValues(engine, outcome).Inc()
	if outcome != "superseded" || elapsed > 0 {
		m.engineDuration.WithLabelValues(engine).Observe(elapsed.Seconds())
	}
}

func (m *Metrics) ObserveArtifact(engine string, bytes int) {
	if m == nil {
		return
	}
	m.artifactBytes.WithLabelValues(engine).Observe(float64(bytes))
}

func (m *Metrics) SetLiveHandles(n int) {
	if m == nil {
		return
	}
	m.liveHandles.Set(float64(n))
}
