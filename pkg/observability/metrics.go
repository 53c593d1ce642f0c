// Package observability exposes prometheus metrics for the polling layer and
// the HTTP surface.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PollMetrics counts what the polling/dedup layer did with each refresh.
type PollMetrics struct {
	Applied  *prometheus.CounterVec
	Skipped  *prometheus.CounterVec
	Failures *prometheus.CounterVec
}

// NewPollMetrics creates and registers the polling counters.
func NewPollMetrics(reg prometheus.Registerer) *PollMetrics {
	m := &PollMetrics{
		Applied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brain_poll_applied_total",
			Help: "Refreshes whose signature changed and were applied to view state.",
		}, []string{"feed"}),
		Skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brain_poll_skipped_total",
			Help: "Refreshes skipped because the signature was unchanged.",
		}, []string{"feed"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brain_poll_failures_total",
			Help: "Refreshes that failed to fetch.",
		}, []string{"feed"}),
	}
	reg.MustRegister(m.Applied, m.Skipped, m.Failures)
	return m
}

// StepMetrics counts preview-engine transitions by outcome.
type StepMetrics struct {
	Steps *prometheus.CounterVec
}

// NewStepMetrics creates and registers the traversal counters.
func NewStepMetrics(reg prometheus.Registerer) *StepMetrics {
	m := &StepMetrics{
		Steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brain_preview_steps_total",
			Help: "Preview engine transitions, labeled by resulting position kind.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.Steps)
	return m
}
