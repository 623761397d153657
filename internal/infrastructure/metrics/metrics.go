package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecordOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "motomind_record_operations_total",
		Help: "Record lifecycle operations by operation and outcome",
	}, []string{"operation", "outcome"}) // outcome=success|failure

	BillDeliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "motomind_bill_deliveries_total",
		Help: "Bill delivery attempts by result",
	}, []string{"result"}) // result=sent|not_finalized|channel_unavailable|provider_not_ready|error

	ConnectionTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "motomind_connection_transitions_total",
		Help: "Connection session state changes by target state",
	}, []string{"state"})

	StatusSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "motomind_status_subscribers",
		Help: "Number of open connection-status subscriptions",
	})

	StatusDropsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "motomind_status_drops_total",
		Help: "Buffered status snapshots evicted because a subscriber was not reading",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "motomind_http_requests_total",
		Help: "HTTP requests by route and status class",
	}, []string{"route", "status"})
)

// ObserveRecordOp records the outcome of a record operation.
func ObserveRecordOp(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	RecordOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// IncDelivery records a delivery attempt.
func IncDelivery(result string) {
	if result == "" {
		result = "unknown"
	}
	BillDeliveriesTotal.WithLabelValues(result).Inc()
}

func IncTransition(state string) {
	ConnectionTransitionsTotal.WithLabelValues(state).Inc()
}
