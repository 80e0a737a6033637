// Package metrics provides Prometheus metrics collection for the POS
// terminal service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// GatewayRequestsTotal tracks upstream Gateway calls by operation and outcome.
	GatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Total number of upstream Gateway requests",
		},
		[]string{"operation", "outcome"},
	)

	// GatewayRequestDuration tracks upstream Gateway call duration.
	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Upstream Gateway request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// CartOperationsTotal tracks cart mutations by operation.
	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation"},
	)

	// OrdersSubmittedTotal tracks order submissions by outcome.
	OrdersSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_submitted_total",
			Help: "Total number of order submissions",
		},
		[]string{"outcome"},
	)

	// RestockSubmissionsTotal tracks restock submissions by outcome.
	RestockSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restock_submissions_total",
			Help: "Total number of restock submissions",
		},
		[]string{"outcome"},
	)

	// ActiveSessions tracks the number of live terminal sessions.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "terminal_active_sessions",
			Help: "Number of active terminal sessions",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCartOperation records one cart mutation.
func RecordCartOperation(operation string) {
	CartOperationsTotal.WithLabelValues(operation).Inc()
}

// RecordOrderSubmission records one order submission outcome.
func RecordOrderSubmission(outcome string) {
	OrdersSubmittedTotal.WithLabelValues(outcome).Inc()
}

// RecordRestockSubmission records one restock submission outcome.
func RecordRestockSubmission(outcome string) {
	RestockSubmissionsTotal.WithLabelValues(outcome).Inc()
}
