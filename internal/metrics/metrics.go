package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors for the storefront.
type Metrics struct {
	OrdersCreated        prometheus.Counter
	CheckoutFailures     prometheus.Counter
	NotificationFailures prometheus.Counter
	CartClearFailures    prometheus.Counter
}

// New registers the collectors on the given registerer. Pass a fresh
// prometheus.NewRegistry() in tests to avoid global state.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OrdersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "canvas_orders_created_total",
			Help: "Orders successfully created at checkout.",
		}),
		CheckoutFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "canvas_checkout_failures_total",
			Help: "Checkout attempts that failed before the order was committed.",
		}),
		NotificationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "canvas_notification_failures_total",
			Help: "Order confirmation dispatches that failed after the order was committed.",
		}),
		CartClearFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "canvas_cart_clear_failures_total",
			Help: "Cart clears that failed after the order was committed.",
		}),
	}
}
