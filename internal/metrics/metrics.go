package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus счетчики сервиса скоринга
type Prometheus struct {
	Predictions        *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	BadRequests        prometheus.Counter
}

// NewPrometheusMetrics создает и регистрирует счетчики
func NewPrometheusMetrics() Prometheus {
	m := Prometheus{
		Predictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "stemi",
				Name:      "predictions_total",
				Help:      "Completed predictions by risk category.",
			}, []string{"risk_category"}),
		ValidationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "stemi",
				Name:      "validation_failures_total",
				Help:      "Rejected feature fields by field name.",
			}, []string{"field"}),
		BadRequests: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "stemi",
				Name:      "bad_requests_total",
				Help:      "Requests whose body could not be parsed as a JSON object.",
			}),
	}
	prometheus.MustRegister(m.Predictions, m.ValidationFailures, m.BadRequests)
	return m
}
