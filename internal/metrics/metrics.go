// Package metrics provides Prometheus metrics for the fsbrowse server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fsbrowse_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fsbrowse_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	containmentRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fsbrowse_containment_rejections_total",
			Help: "Requests denied because the path resolved outside the chosen root",
		},
	)

	previewBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fsbrowse_preview_bytes_total",
			Help: "Total bytes returned by text previews",
		},
	)
)

// RecordContainmentRejection counts a fail-closed containment denial.
func RecordContainmentRejection() {
	containmentRejectionsTotal.Inc()
}

// RecordPreviewBytes counts bytes served by a text preview.
func RecordPreviewBytes(n int) {
	previewBytesTotal.Add(float64(n))
}

// Middleware returns gin middleware that records request counts and
// durations per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
