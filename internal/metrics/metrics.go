// Package metrics holds the Prometheus instruments for the API surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "calculations_total",
		Help:      "Completed power calculations, labeled by phase configuration.",
	}, []string{"phase"})

	validationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "validation_failures_total",
		Help:      "Requests rejected by input validation.",
	})

	historyOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "history_ops_total",
		Help:      "History store operations, labeled by operation.",
	}, []string{"op"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dashboard",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency, labeled by route template.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

// RecordCalculation counts one completed calculation.
func RecordCalculation(phase string) {
	calculationsTotal.WithLabelValues(phase).Inc()
}

// RecordValidationFailure counts one request rejected by the validator.
func RecordValidationFailure() {
	validationFailuresTotal.Inc()
}

// RecordHistoryOp counts one history operation (save, delete, clear, ...).
func RecordHistoryOp(op string) {
	historyOpsTotal.WithLabelValues(op).Inc()
}

// ObserveRequest records one completed HTTP request.
func ObserveRequest(method, path string, status int, d time.Duration) {
	requestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
