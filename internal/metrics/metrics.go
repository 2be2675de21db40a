package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	AccessEvaluations *prometheus.CounterVec
	BreachAlerts      prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		AccessEvaluations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "privacy_gov_access_evaluations_total",
			Help: "Total number of access evaluations by outcome",
		}, []string{"outcome"}),
		BreachAlerts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "privacy_gov_breach_alerts_total",
			Help: "Total number of breach alerts raised",
		}),
	}
}

// ObserveEvaluation records one access evaluation outcome
func (m *Metrics) ObserveEvaluation(authorized bool) {
	outcome := "denied"
	if authorized {
		outcome = "authorized"
	}
	m.AccessEvaluations.WithLabelValues(outcome).Inc()
}

// IncrementBreachAlerts increments the breach alert counter by 1
func (m *Metrics) IncrementBreachAlerts() {
	m.BreachAlerts.Inc()
}
