// Package metrics declares the Prometheus instruments for the tripsplit
// server. Everything is registered on the default registry and exposed via
// /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tripsplit_http_requests_total",
	Help: "HTTP requests by method and status code.",
}, []string{"method", "status"})

var requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "tripsplit_http_request_duration_seconds",
	Help:    "HTTP request latency.",
	Buckets: prometheus.DefBuckets,
})

// ReportsComputed counts balance reports assembled for trips.
var ReportsComputed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tripsplit_reports_computed_total",
	Help: "Balance reports computed.",
})

// SettlementsRecorded counts settlements appended to trip ledgers.
var SettlementsRecorded = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tripsplit_settlements_recorded_total",
	Help: "Settlements recorded.",
})

// ObserveRequest records one finished HTTP request.
func ObserveRequest(method string, status int, duration time.Duration) {
	requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	requestDuration.Observe(duration.Seconds())
}
