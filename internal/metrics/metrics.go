// Package metrics holds the Prometheus collectors for post generation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

// Metrics groups the collectors on a private registry so that several
// instances (one per test) never collide. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	completionsTotal *prometheus.CounterVec
	retriesTotal     *prometheus.CounterVec
	postsTotal       *prometheus.CounterVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		completionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "postgen_completions_total",
				Help: "Completion requests by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		retriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "postgen_budget_retries_total",
				Help: "Over-budget retries by platform and outcome",
			},
			[]string{"platform", "outcome"},
		),
		postsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "postgen_posts_total",
				Help: "Generated post slots by platform and status",
			},
			[]string{"platform", "status"},
		),
	}

	m.registry.MustRegister(m.completionsTotal, m.retriesTotal, m.postsTotal)

	return m
}

// ObserveCompletion counts one completion attempt.
func (m *Metrics) ObserveCompletion(provider, outcome string) {
	if m == nil {
		return
	}
	m.completionsTotal.WithLabelValues(provider, outcome).Inc()
}

// ObserveRetry counts one budget retry.
func (m *Metrics) ObserveRetry(platform, outcome string) {
	if m == nil {
		return
	}
	m.retriesTotal.WithLabelValues(platform, outcome).Inc()
}

// ObservePost counts one generated slot.
func (m *Metrics) ObservePost(platform, status string) {
	if m == nil {
		return
	}
	m.postsTotal.WithLabelValues(platform, status).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Completions returns the completion counter, for tests.
func (m *Metrics) Completions() *prometheus.CounterVec { return m.completionsTotal }

// Retries returns the retry counter, for tests.
func (m *Metrics) Retries() *prometheus.CounterVec { return m.retriesTotal }

// Posts returns the post counter, for tests.
func (m *Metrics) Posts() *prometheus.CounterVec { return m.postsTotal }
