// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// Prometheus instrumentation lives here. HTTP series are labelled by method,
// registered route and status; requests that matched no route share the
// "unmatched" path label so scanners cannot blow up cardinality.
//
// Domain series are fed by the handlers:
//
//	reviews_submitted_total{outcome}      created, replayed, invalid, not_found, error
//	dashboard_empty_results_total{view}   views answered with an empty state
//	dashboard_exports_total{export}       CSV downloads
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// UnmatchedPath is the path label of requests that hit no route.
const UnmatchedPath = "unmatched"

var (
	httpReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds.",
			// dashboard reads recompute from the store on every call
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	httpInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "Current number of in-flight HTTP requests.",
		},
	)

	httpRespSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "Size of HTTP responses in bytes.",
			Buckets: prometheus.ExponentialBuckets(256, 4, 8), // 256B..4MiB
		},
		[]string{"method", "path"},
	)

	reviewsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviews_submitted_total",
			Help: "Review submissions by outcome.",
		},
		[]string{"outcome"},
	)

	emptyResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_empty_results_total",
			Help: "Dashboard views that produced no rows.",
		},
		[]string{"view"},
	)

	exports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_exports_total",
			Help: "CSV exports served.",
		},
		[]string{"export"},
	)
)

func init() {
	prometheus.MustRegister(httpReqs, httpLat, httpInflight, httpRespSize, reviewsSubmitted, emptyResults, exports)
}

// Review submission outcomes.
const (
	OutcomeCreated  = "created"
	OutcomeReplayed = "replayed"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// ObserveReviewSubmitted counts one review submission with the given outcome.
func ObserveReviewSubmitted(outcome string) {
	reviewsSubmitted.WithLabelValues(outcome).Inc()
}

// ObserveEmptyResult counts a view (e.g. "comparison", "heatmap") that had
// nothing to show.
func ObserveEmptyResult(view string) {
	emptyResults.WithLabelValues(view).Inc()
}

// ObserveExport counts a served CSV export ("platform_comparison", ...).
func ObserveExport(export string) {
	exports.WithLabelValues(export).Inc()
}

// Metrics instruments every request. Mount promhttp.Handler() next to it.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpInflight.Inc()
		defer httpInflight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = UnmatchedPath
		}
		method := c.Request.Method

		httpReqs.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpLat.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		if size := c.Writer.Size(); size >= 0 {
			httpRespSize.WithLabelValues(method, path).Observe(float64(size))
		}
	}
}
