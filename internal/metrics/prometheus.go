package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector implements Recorder on top of Prometheus counters.
type Collector struct {
	authSuccess   prometheus.Counter
	authFailure   *prometheus.CounterVec
	orderCreated  prometheus.Counter
	orderSettled  prometheus.Counter
	intentCreated prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics
// with the given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		authSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "highway_auth_success_total",
			Help: "Total number of successful token authentications",
		}),
		authFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "highway_auth_failure_total",
			Help: "Total number of rejected requests by reason",
		}, []string{"reason"}),
		orderCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "highway_orders_created_total",
			Help: "Total number of orders created",
		}),
		orderSettled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "highway_orders_settled_total",
			Help: "Total number of order settlements recorded",
		}),
		intentCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "highway_payment_intents_total",
			Help: "Total number of payment intents created upstream",
		}),
	}

	reg.MustRegister(
		c.authSuccess,
		c.authFailure,
		c.orderCreated,
		c.orderSettled,
		c.intentCreated,
	)

	return c
}

// IncAuthSuccess records a successful authentication.
func (c *Collector) IncAuthSuccess() { c.authSuccess.Inc() }

// IncAuthFailure records a rejected request.
func (c *Collector) IncAuthFailure(reason string) {
	c.authFailure.WithLabelValues(reason).Inc()
}

// IncOrderCreated records an order creation.
func (c *Collector) IncOrderCreated() { c.orderCreated.Inc() }

// IncOrderSettled records a completed settlement.
func (c *Collector) IncOrderSettled() { c.orderSettled.Inc() }

// IncPaymentIntentCreated records a payment intent created upstream.
func (c *Collector) IncPaymentIntentCreated() { c.intentCreated.Inc() }

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
