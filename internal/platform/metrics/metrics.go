package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for CNP validation.
type Metrics struct {
	Validations *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// If reg already holds an identical collector, that collector is reused, so
// repeated calls against the same registerer share one counter.
func New(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	validations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validations_total",
		Help:      "Total number of CNP validations by outcome",
	}, []string{"outcome"})

	if err := reg.Register(validations); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("register validations counter: %w", err)
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("register validations counter: existing collector is %T", are.ExistingCollector)
		}
		validations = existing
	}

	return &Metrics{Validations: validations}, nil
}

// RecordOutcome increments the counter for outcome ("valid" or a rejection reason).
func (m *Metrics) RecordOutcome(outcome string) {
	m.Validations.WithLabelValues(outcome).Inc()
}
