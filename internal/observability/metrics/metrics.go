package metrics

import "github.com/prometheus/client_golang/prometheus"

// IntakeMetrics exposes counters/histograms for the lead intake flow.
// A nil receiver is a no-op so callers don't need to guard.
type IntakeMetrics struct {
	submissionsTotal *prometheus.CounterVec
	handlerLatency   *prometheus.HistogramVec
}

func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	m := &IntakeMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadintake",
			Subsystem: "intake",
			Name:      "submissions_total",
			Help:      "Total lead submissions by outcome",
		}, []string{"outcome"}),
		handlerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "leadintake",
			Subsystem: "intake",
			Name:      "handler_latency_seconds",
			Help:      "Latency of intake request handling",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.handlerLatency)
	return m
}

func (m *IntakeMetrics) ObserveSubmission(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
	m.handlerLatency.WithLabelValues(outcome).Observe(seconds)
}
