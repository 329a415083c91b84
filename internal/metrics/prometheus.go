package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Inspections *prometheus.CounterVec
	Mean        *prometheus.GaugeVec
	Samples     *prometheus.HistogramVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Inspections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "silhouette",
				Name:      "inspections",
			}, []string{"model", "outcome"}),
		Mean: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "silhouette",
				Name:      "mean",
			}, []string{"model"}),
		Samples: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "silhouette",
				Name:      "samples",
				Buckets:   prometheus.LinearBuckets(-1, 0.2, 11),
			}, []string{"model"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Inspections, p.Mean, p.Samples}
}
