package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	m := New()

	m.ObserveStored("medication")
	m.ObserveStored("medication")
	m.ObserveInvalid("missing_field")
	m.ObserveOutcome(OutcomePreflight)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.LogsStored.WithLabelValues("medication")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues(OutcomeStored)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues(OutcomeInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("missing_field")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues(OutcomePreflight)))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveStored("sentiment")
		m.ObserveInvalid("no_data")
		m.ObserveOutcome(OutcomePanic)
	})
}
