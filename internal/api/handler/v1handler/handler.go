// Package v1handler implements the /v1 HTTP API on top of the identity and
// engagement services.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"civic/internal/engagement"
	"civic/internal/identity"
	"civic/pkg/controller"
	"civic/pkg/logger"
	"civic/pkg/ratelimit"
	"civic/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

const (
	// DefaultLimit is the page size used when a list request sets none.
	DefaultLimit = 20
	// MaxLimit caps the page size of list requests.
	MaxLimit = 100
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes = 1 << 20
)

// Deps are the services the v1 routes call into.
type Deps struct {
	Identity   identity.Service
	Engagement engagement.Service
	// Limiter throttles the public routes. Nil disables rate limiting.
	Limiter *ratelimit.Limiter
}

// Handler serves the v1 API routes registered by Register.
type Handler struct {
	deps Deps
	sec  *SecHandler

	generated metric.Int64Counter
	validated metric.Int64Counter
}

// New creates the v1 handler. A nil meter provider disables its metrics.
func New(deps Deps, sec *SecHandler, mp metric.MeterProvider) (*Handler, error) {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter("civic/v1")

	generated, err := meter.Int64Counter("civic.identity_numbers.generated",
		metric.WithDescription("Identity numbers generated through the API."))
	if err != nil {
		return nil, fmt.Errorf("could not create generated counter: %w", err)
	}
	validated, err := meter.Int64Counter("civic.identity_numbers.validated",
		metric.WithDescription("Identity numbers validated through the API, by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create validated counter: %w", err)
	}

	return &Handler{
		deps:      deps,
		sec:       sec,
		generated: generated,
		validated: validated,
	}, nil
}

// Register mounts the v1 routes on r.
func (h *Handler) Register(r chi.Router) {
	// public, rate limited
	r.Group(func(r chi.Router) {
		if h.deps.Limiter != nil {
			r.Use(h.deps.Limiter.Middleware)
		}

		r.Get("/identity-numbers", h.generateNumbers)
		r.Post("/identity-numbers/validate", h.validateNumber)
		r.Post("/feedback", h.submitFeedback)
		r.Post("/visits", h.recordVisit)
		r.Get("/visits", h.getVisits)
	})

	// bearer authenticated
	r.Group(func(r chi.Router) {
		r.Use(h.sec.Middleware)

		r.Post("/identities", h.issueIdentity)
		r.Get("/identities", h.listIdentities)
		r.Get("/identities/{id}", h.getIdentity)
		r.Delete("/identities/{id}", h.deleteIdentity)
		r.Post("/identity-batches", h.enqueueBatch)
		r.Get("/identity-batches/{id}", h.getBatch)
		r.Get("/feedback", h.recentFeedback)
	})
}

// NewError maps err to a status code and error body. Internal failures are
// logged and reported without their cause.
func (h *Handler) NewError(ctx context.Context, err error) (int, controller.ErrorResponse) {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) (int, controller.ErrorResponse) {
	kind := serrors.KindOf(err)
	if kind == serrors.ErrInternal && errors.Is(err, context.DeadlineExceeded) {
		kind = serrors.ErrTimeout
	}
	status := serrors.HTTPStatus(kind)

	msg := serrors.MessageOf(err)
	switch kind {
	case serrors.ErrTimeout:
		msg = "request timed out"
	case serrors.ErrInternal:
		logger.Error(ctx, "internal error", zap.Error(err))
		msg = "internal error"
	}

	return status, controller.ErrorResponse{Code: kind.Error(), Message: msg}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, body := newError(ctx, err)
	controller.WriteJSON(w, status, body)
}

// decodeJSON reads the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return serrors.Wrap(serrors.ErrBadRequest, err, "request body too large")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "malformed request body")
	}

	return nil
}

// queryInt parses the query parameter name, returning def when it is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be an integer", name)
	}

	return v, nil
}

func queryLimit(r *http.Request) (uint, error) {
	limit, err := queryInt(r, "limit", DefaultLimit)
	if err != nil {
		return 0, err
	}
	if limit < 1 || limit > MaxLimit {
		return 0, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit)
	}

	return uint(limit), nil
}
