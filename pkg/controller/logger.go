package controller

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"civic/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// responseRecorder remembers the status and body size written by the handler.
type responseRecorder struct {
	http.ResponseWriter

	status  int
	written int
}

func (rr *responseRecorder) WriteHeader(code int) {
	rr.status = code
	rr.ResponseWriter.WriteHeader(code)
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	n, err := rr.ResponseWriter.Write(b)
	rr.written += n

	return n, err //nolint: wrapcheck
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rr *responseRecorder) Unwrap() http.ResponseWriter { return rr.ResponseWriter }

// GetClientIP returns the address the request originated from. The first
// parseable entry of X-Forwarded-For wins, then X-Real-IP, then the peer
// address. Header values that are not IP addresses are ignored. The headers
// are client supplied, so the result is only fit for logging.
func GetClientIP(r *http.Request) string {
	for _, hop := range strings.Split(r.Header.Get("X-Forwarded-For"), ",") {
		if addr, err := netip.ParseAddr(strings.TrimSpace(hop)); err == nil {
			return addr.Unmap().String()
		}
	}

	if addr, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return addr.Unmap().String()
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

// CtxKey is the type of context keys set by this package.
type CtxKey string

// RequestIDKey holds the request ID and doubles as its log field name.
const RequestIDKey CtxKey = "RequestID"

// RequestID returns the request ID set by WithLogger, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)

	return id
}

// routePattern returns the matched chi pattern and whether there was one.
func routePattern(r *http.Request) (string, bool) {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern, true
		}
	}

	return "", false
}

// WithLogger tags the request context with a request ID and a logger carrying
// it, echoes the ID as X-Request-Id and writes one access line per request.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		ctx = logger.WithFields(ctx, zap.String(string(RequestIDKey), requestID))
		r = r.WithContext(ctx)

		rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		started := time.Now()
		next.ServeHTTP(rr, r)

		route, ok := routePattern(r)
		if !ok {
			route = r.URL.Path
		}
		logger.Info(ctx, "access log",
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.String("url", r.URL.String()),
			zap.Int("status_code", rr.status),
			zap.Int("bytes", rr.written),
			zap.Duration("latency", time.Since(started)),
			zap.String("client_ip", GetClientIP(r)),
			zap.String("user_agent", r.UserAgent()),
			zap.String("referer", r.Referer()),
		)
	})
}
