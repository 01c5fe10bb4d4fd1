package notifier

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	counterDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "spend_easy",
			Subsystem: "notifier",
			Name:      "delivered_total",
		},
		[]string{"id", "failed"},
	)

	counterCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "spend_easy",
			Subsystem: "notifier",
			Name:      "cancelled_total",
		},
	)
)

func observeDelivery(id string, err error) {
	counterDelivered.WithLabelValues(id, strconv.FormatBool(err != nil)).Inc()
}

func observeCancelled(n int) {
	counterCancelled.Add(float64(n))
}
