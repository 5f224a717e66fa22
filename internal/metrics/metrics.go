package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_http_requests_total",
		Help: "Total number of HTTP requests handled by the portal",
	}, []string{"status", "route"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "portal_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	upstreamErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_upstream_errors_total",
		Help: "Backend failures surfaced to pages, by status",
	}, []string{"status", "route"})
)

// records request totals and latency per route. Uses the route template
// (c.FullPath) rather than the raw URL to keep label cardinality bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(status, route).Inc()
		httpRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())

		if c.Writer.Status() >= 500 {
			upstreamErrorsTotal.WithLabelValues(status, route).Inc()
		}
	}
}
