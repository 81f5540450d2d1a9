package async

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks scheduled computations. A nil *Metrics records nothing.
//
// Exposed (namespace "showcase_async"):
//   - pending (gauge): computations waiting on their timer or running.
//   - resolved_total (counter): resolved computations by outcome
//     (success/failure).
//   - resolve_seconds (histogram): time from scheduling to resolution.
type Metrics struct {
	pending  prometheus.Gauge
	resolved *prometheus.CounterVec
	latency  prometheus.Histogram
}

// NewMetrics registers the scheduler metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		pending: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "showcase",
			Subsystem: "async",
			Name:      "pending",
			Help:      "Computations waiting on their timer or running.",
		}),
		resolved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "showcase",
			Subsystem: "async",
			Name:      "resolved_total",
			Help:      "Resolved computations by outcome.",
		}, []string{"outcome"}),
		latency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "showcase",
			Subsystem: "async",
			Name:      "resolve_seconds",
			Help:      "Time from scheduling to resolution.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		}),
	}
}

func (m *Metrics) started() {
	if m == nil {
		return
	}
	m.pending.Inc()
}

func (m *Metrics) finished(err error, elapsed time.Duration) {
	if m == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}

	m.pending.Dec()
	m.resolved.WithLabelValues(outcome).Inc()
	m.latency.Observe(elapsed.Seconds())
}
