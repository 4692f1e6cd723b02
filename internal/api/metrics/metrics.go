// Package metrics defines and registers all custom Prometheus metrics for
// the tea-shop storefront gateway. It is the single source of truth for
// metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "teashop"

// CartOperationsTotal counts cart mutations.
// Label:
//   - op: "add", "update", "remove", "clear"
var CartOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_operations_total",
		Help:      "Total number of cart mutations, by operation.",
	},
	[]string{"op"},
)

// CheckoutsTotal counts checkout attempts.
// Label:
//   - result: "success", "rejected" (validation), "remote_error"
var CheckoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of checkout attempts, by result.",
	},
	[]string{"result"},
)

// OrderValue observes the total of each successfully placed order.
var OrderValue = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_value",
		Help:      "Distribution of confirmed order totals.",
		Buckets:   prometheus.ExponentialBuckets(100, 2.5, 8),
	},
)

// DeliveryTransitionsTotal counts confirmed delivery status transitions
// requested through the gateway.
// Labels:
//   - from: the status the operator advanced from
//   - to: the confirmed new status
var DeliveryTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "delivery_transitions_total",
		Help:      "Total number of confirmed delivery status transitions.",
	},
	[]string{"from", "to"},
)

// SessionEventsTotal counts session lifecycle events.
// Label:
//   - event: "login", "logout", "restore"
var SessionEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_events_total",
		Help:      "Total number of session lifecycle events.",
	},
	[]string{"event"},
)

// UpstreamRequestDuration measures calls to the tea-shop API.
// Labels:
//   - op: logical operation, e.g. "create_order", "list_goods"
//   - outcome: "ok" or "error"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests to the tea-shop API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op", "outcome"},
)
