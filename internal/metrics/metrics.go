package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels
const (
	OutcomeStored    = "stored"
	OutcomeInvalid   = "invalid"
	OutcomeFailed    = "store_failed"
	OutcomePanic     = "panic"
	OutcomePreflight = "preflight"
)

type Metrics struct {
	Registry *prometheus.Registry

	Requests    *prometheus.CounterVec
	LogsStored  *prometheus.CounterVec
	Validations *prometheus.CounterVec
}

// New registers the collectors on their own registry so tests and the
// local server never share state with the global default registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "health_logging",
			Name:      "requests_total",
			Help:      "Requests handled, by outcome.",
		}, []string{"outcome"}),
		LogsStored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "health_logging",
			Name:      "logs_stored_total",
			Help:      "Health logs written, by log type.",
		}, []string{"log_type"}),
		Validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "health_logging",
			Name:      "validation_failures_total",
			Help:      "Rejected requests, by reason.",
		}, []string{"reason"}),
	}

	reg.MustRegister(m.Requests, m.LogsStored, m.Validations)
	return m
}

// The methods below are safe on a nil *Metrics.

func (m *Metrics) ObserveOutcome(outcome string) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveStored(logType string) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(OutcomeStored).Inc()
	m.LogsStored.WithLabelValues(logType).Inc()
}

func (m *Metrics) ObserveInvalid(reason string) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(OutcomeInvalid).Inc()
	m.Validations.WithLabelValues(reason).Inc()
}
