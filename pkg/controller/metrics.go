package controller

import (
	"net/http"
	"strconv"
	"time"

	"civic/pkg/metrics"
)

// WithMetrics records the latency of every request in m, labelled by the
// matched chi route pattern so path parameters do not explode cardinality.
func WithMetrics(m *metrics.HTTP) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rr, r)

			route, ok := routePattern(r)
			if !ok {
				route = "unmatched"
			}
			m.Duration.WithLabelValues(r.Method, route, strconv.Itoa(rr.status)).
				Observe(time.Since(start).Seconds())
		})
	}
}
