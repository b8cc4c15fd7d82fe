package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Number of orders accepted.",
	})

	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_status_transitions_total",
		Help: "Number of order status transitions by target status.",
	}, []string{"status"})

	AddressLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "address_lookups_total",
		Help: "CEP lookups against the address provider by outcome.",
	}, []string{"outcome"})
)

// Handler exposes the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
