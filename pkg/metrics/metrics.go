// Package metrics holds the prometheus collectors shared by the HTTP layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// HTTP groups the request metrics recorded by controller.WithMetrics.
type HTTP struct {
	Duration *prometheus.HistogramVec
}

// NewHTTP registers the HTTP collectors on reg.
func NewHTTP(reg prometheus.Registerer) *HTTP {
	return &HTTP{
		Duration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "civic",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests by method, route and status code.",
			Buckets:   DefaultBuckets,
		}, []string{"method", "route", "code"}),
	}
}
