package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreated counts orders accepted by the store.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "printhub_orders_created_total",
		Help: "Number of print orders created.",
	})

	// StatusTransitions counts committed order transitions by target status.
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "printhub_order_transitions_total",
		Help: "Number of committed order status transitions.",
	}, []string{"to_status"})

	// RejectedTransitions counts transition attempts refused by the state machine.
	RejectedTransitions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "printhub_order_transitions_rejected_total",
		Help: "Number of status transition attempts refused as illegal.",
	})

	// LowStockItems tracks how many inventory items sit below their threshold.
	LowStockItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "printhub_low_stock_items",
		Help: "Current number of inventory items below their restock threshold.",
	})
)
