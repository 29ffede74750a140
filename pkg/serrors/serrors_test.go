package serrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"civic/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type storeError struct{ table string }

func (e *storeError) Error() string { return "could not write " + e.table }

func TestError_Formatting(t *testing.T) {
	tests := []struct {
		name string
		err  *serrors.Error
		want string
	}{
		{name: "message only", err: serrors.With(serrors.ErrBadRequest, "count must be between 1 and %d", 500), want: "count must be between 1 and 500"},
		{name: "message and cause", err: serrors.Wrap(serrors.ErrConflict, errors.New("duplicate key"), "number taken"), want: "number taken: duplicate key"},
		{name: "kind only", err: serrors.KindOnly(serrors.ErrRateLimited), want: "RATE_LIMITED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_IsAndAs(t *testing.T) {
	cause := &storeError{table: "identities"}
	err := fmt.Errorf("could not issue identity: %w",
		serrors.Wrap(serrors.ErrUnavailable, cause, "storage is down"))

	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, serrors.ErrNotFound)

	var k serrors.Kind
	require.ErrorAs(t, err, &k)
	require.Equal(t, serrors.ErrUnavailable, k)

	var se *storeError
	require.ErrorAs(t, err, &se)
	require.Same(t, cause, se)
}

func TestNewKind_IsDistinct(t *testing.T) {
	odd := serrors.NewKind("EXHAUSTED")
	require.NotErrorIs(t, serrors.KindOnly(odd), serrors.ErrConflict)
	require.ErrorIs(t, serrors.KindOnly(odd), odd)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(nil))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(serrors.ErrNotFound))

	wrapped := fmt.Errorf("could not load: %w", serrors.With(serrors.ErrConflict, "number taken"))
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(wrapped))
}

func TestMessageOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", serrors.Wrap(serrors.ErrBadRequest, errors.New("cause"), "bad size"))
	require.Equal(t, "bad size", serrors.MessageOf(wrapped))
	require.Equal(t, "NOT_FOUND", serrors.MessageOf(serrors.KindOnly(serrors.ErrNotFound)))
	require.Equal(t, "INTERNAL", serrors.MessageOf(errors.New("plain")))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[serrors.Kind]int{
		serrors.ErrNotFound:     http.StatusNotFound,
		serrors.ErrUnauthorized: http.StatusUnauthorized,
		serrors.ErrForbidden:    http.StatusForbidden,
		serrors.ErrBadRequest:   http.StatusBadRequest,
		serrors.ErrConflict:     http.StatusConflict,
		serrors.ErrInternal:     http.StatusInternalServerError,
		serrors.ErrTimeout:      http.StatusGatewayTimeout,
		serrors.ErrUnavailable:  http.StatusServiceUnavailable,
		serrors.ErrRateLimited:  http.StatusTooManyRequests,
		serrors.NewKind("ODD"):  http.StatusInternalServerError,
	}
	for k, want := range cases {
		require.Equal(t, want, serrors.HTTPStatus(k), "kind %s", k)
	}
}
