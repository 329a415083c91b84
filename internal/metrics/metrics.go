package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	Success = "success"
	Failure = "failure"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.collectors()...)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// NewMetrics creates an observer that is not registered anywhere.
func NewMetrics() *Metrics {
	return &Metrics{
		mutex:      new(sync.RWMutex),
		prometheus: NewPrometheusMetrics(),
	}
}

// Register adds the metrics to the given registry.
func (m *Metrics) Register(registerer prometheus.Registerer) error {
	for _, c := range m.prometheus.collectors() {
		if err := registerer.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Fail counts a failed inspection.
func (m *Metrics) Fail(model string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.prometheus.Inspections.WithLabelValues(model, Failure).Inc()
}

// Observe records a successful inspection with its mean and per-sample scores.
func (m *Metrics) Observe(model string, mean float64, samples []float64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.prometheus.Inspections.WithLabelValues(model, Success).Inc()
	m.prometheus.Mean.WithLabelValues(model).Set(mean)
	h := m.prometheus.Samples.WithLabelValues(model)
	for _, s := range samples {
		h.Observe(s)
	}
}

// Inspections returns the counter for the given model and outcome.
func (m *Metrics) Inspections(model, outcome string) prometheus.Counter {
	return m.prometheus.Inspections.WithLabelValues(model, outcome)
}

// Mean returns the gauge of the last mean score for the given model.
func (m *Metrics) Mean(model string) prometheus.Gauge {
	return m.prometheus.Mean.WithLabelValues(model)
}
