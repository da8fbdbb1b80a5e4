package stats

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusSink exposes solve counts and latencies as Prometheus metrics,
// keyed by Kind. It gives the engine a way to export the same family of
// numbers operator-lifecycle-manager's controllers expose via
// prometheus/client_golang, rather than only writing them to a log.
type PrometheusSink struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	ends     prometheus.Counter
}

// NewPrometheusSink constructs a sink and registers its collectors with
// reg. Passing prometheus.DefaultRegisterer is the usual choice.
func NewPrometheusSink(reg prometheus.Registerer, namespace string) *PrometheusSink {
	s := &PrometheusSink{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "car",
			Name:      "sat_solve_total",
			Help:      "Number of SAT solve calls, by kind and outcome.",
		}, []string{"kind", "sat"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "car",
			Name:      "sat_solve_duration_seconds",
			Help:      "SAT solve call latency, by kind.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		ends: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "car",
			Name:      "runs_total",
			Help:      "Number of completed engine runs.",
		}),
	}
	reg.MustRegister(s.calls, s.duration, s.ends)
	return s
}

func (s *PrometheusSink) OnSolveBegin(Kind) {}

func (s *PrometheusSink) OnSolveEnd(kind Kind, d time.Duration, sat bool) {
	s.calls.WithLabelValues(string(kind), boolLabel(sat)).Inc()
	s.duration.WithLabelValues(string(kind)).Observe(d.Seconds())
}

func (s *PrometheusSink) OnEnd() {
	s.ends.Inc()
}

func boolLabel(b bool) string {
	if b {
		return "sat"
	}
	return "unsat"
}

var _ Sink = (*PrometheusSink)(nil)
