package reminders

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	histogramPassTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "spend_easy",
			Subsystem: "reminders",
			Name:      "histogram_pass_time_seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"failed"},
	)

	counterScheduled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "spend_easy",
			Subsystem: "reminders",
			Name:      "scheduled_total",
		},
		[]string{"kind"},
	)
)

func observePass(elapsed time.Duration, err error) {
	histogramPassTime.
		WithLabelValues(strconv.FormatBool(err != nil)).
		Observe(elapsed.Seconds())
}

func observeIntent(kind Kind) {
	counterScheduled.WithLabelValues(string(kind)).Inc()
}
