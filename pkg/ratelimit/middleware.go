package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"slices"
	"strconv"
	"strings"
	"time"

	"civic/pkg/controller"
	"civic/pkg/logger"
	"civic/pkg/serrors"

	"go.uber.org/zap"
)

// Limiter applies one limit to every request it guards.
type Limiter struct {
	store   Store
	limit   int
	window  time.Duration
	prefix  string
	proxies []netip.Prefix
}

// NewLimiter allows limit requests per window and client IP. prefix keeps the
// keys of separate limiters apart when they share a store.
func NewLimiter(store Store, limit int, window time.Duration, prefix string) *Limiter {
	return &Limiter{store: store, limit: limit, window: window, prefix: prefix}
}

// WithTrustedProxies makes the limiter read X-Forwarded-For when the peer is
// one of proxies. Without trusted proxies the peer address is the key.
func (l *Limiter) WithTrustedProxies(proxies []netip.Prefix) *Limiter {
	l.proxies = proxies

	return l
}

// ParseProxies parses IP addresses and CIDR ranges.
func ParseProxies(values []string) ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if p, err := netip.ParsePrefix(v); err == nil {
			out = append(out, p.Masked())

			continue
		}
		addr, err := netip.ParseAddr(v)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", v, err)
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return out, nil
}

func (l *Limiter) trusted(addr netip.Addr) bool {
	return slices.ContainsFunc(l.proxies, func(p netip.Prefix) bool { return p.Contains(addr) })
}

// clientKey is the peer address, unless the peer is a trusted proxy. Then the
// X-Forwarded-For hops are walked from the right and the first hop that is not
// a trusted proxy wins, since everything left of it is client supplied.
func (l *Limiter) clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	peer, err := netip.ParseAddr(host)
	if err != nil {
		return host
	}
	peer = peer.Unmap()
	if !l.trusted(peer) {
		return peer.String()
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		addr, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}
		addr = addr.Unmap()
		if !l.trusted(addr) {
			return addr.String()
		}
	}

	return peer.String()
}

// Middleware rejects requests over the limit with 429. A failing store lets
// the request through.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ip := l.clientKey(r)

		res, err := l.store.Allow(ctx, l.prefix+ip, l.limit, l.window)
		if err != nil {
			logger.Error(ctx, "could not check rate limit", zap.Error(err), zap.String("client_ip", ip))
			next.ServeHTTP(w, r)

			return
		}

		h := w.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

		if !res.Allowed {
			retry := max(int(time.Until(res.ResetAt).Round(time.Second).Seconds()), 1)
			h.Set("Retry-After", strconv.Itoa(retry))
			controller.WriteError(w, serrors.ErrRateLimited, "too many requests, please try again later")

			return
		}

		next.ServeHTTP(w, r)
	})
}
