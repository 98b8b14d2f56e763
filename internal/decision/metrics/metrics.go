package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the decision module.
type Metrics struct {
	// Per-stage check latencies
	StageLatency *prometheus.HistogramVec

	// Decision outcomes by status
	DecisionOutcome *prometheus.CounterVec

	// Overall pipeline latency
	ProcessLatency prometheus.Histogram
}

// New creates a new Metrics instance with all decision module metrics registered.
func New() *Metrics {
	return &Metrics{
		StageLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lendflow_decision_stage_duration_seconds",
			Help:    "Duration of individual pipeline stage checks",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"stage"}),

		DecisionOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lendflow_decision_outcomes_total",
			Help: "Total decision outcomes by status",
		}, []string{"status"}),

		ProcessLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "lendflow_decision_process_duration_seconds",
			Help:    "Duration of full pipeline runs including side effects",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// ObserveStageLatency records the duration of one stage check.
func (m *Metrics) ObserveStageLatency(stage string, d time.Duration) {
	if m != nil {
		m.StageLatency.WithLabelValues(stage).Observe(d.Seconds())
	}
}

// IncrementOutcome records a decision outcome.
func (m *Metrics) IncrementOutcome(status string) {
	if m != nil {
		m.DecisionOutcome.WithLabelValues(status).Inc()
	}
}

// ObserveProcessLatency records the total pipeline duration.
func (m *Metrics) ObserveProcessLatency(d time.Duration) {
	if m != nil {
		m.ProcessLatency.Observe(d.Seconds())
	}
}
