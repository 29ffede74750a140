package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"civic/internal/api"
	"civic/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func newHandler(t *testing.T, checks map[string]api.Pinger) http.Handler {
	t.Helper()

	h, err := api.NewHandler(api.Deps{Checks: checks}, api.Options{MetricsPath: "/metrics"})
	require.NoError(t, err)

	return h
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestHealthz(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	t.Run("healthy", func(t *testing.T) {
		rec := get(newHandler(t, map[string]api.Pinger{"postgres": ok, "redis": ok}), "/healthz")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"status":"ok","checks":{"postgres":"ok","redis":"ok"}}`, rec.Body.String())
	})

	t.Run("degraded", func(t *testing.T) {
		rec := get(newHandler(t, map[string]api.Pinger{"postgres": ok, "redis": down}), "/healthz")
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "degraded", body["status"])
	})
}

func TestSpecsAndDocs(t *testing.T) {
	h := newHandler(t, nil)

	rec := get(h, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "openapi: 3.0.3")

	rec = get(h, "/v1/docs/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestMiddlewaresAndMetrics(t *testing.T) {
	h := newHandler(t, nil)

	rec := get(h, "/healthz")
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = get(h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "civic_http_request_duration_seconds")
	require.True(t, strings.Contains(body, `route="/healthz"`), "expected healthz route label")
}

func TestPprof(t *testing.T) {
	h := newHandler(t, nil)

	rec := get(h, "/debug/pprof/")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(h, "/debug/pprof/cmdline")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutesWithoutKey(t *testing.T) {
	rec := get(newHandler(t, nil), "/v1/identities")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
