package v1handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"civic/internal/api/handler/v1handler"
	"civic/internal/identity"
	"civic/pkg/logger"
	"civic/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newBareHandler(t *testing.T) *v1handler.Handler {
	t.Helper()
	h, err := v1handler.New(v1handler.Deps{}, newSecHandlerForTest(t, ""), nil)
	require.NoError(t, err)

	return h
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := newBareHandler(t)

	status, body := h.NewError(context.Background(), errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, serrors.ErrInternal.Error(), body.Code)
	require.Equal(t, "internal error", body.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := newBareHandler(t)

	// Pass the Kind sentinel directly
	status, body := h.NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, serrors.ErrNotFound.Error(), body.Code)
	require.Equal(t, serrors.ErrNotFound.Error(), body.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := newBareHandler(t)

	err := serrors.With(serrors.ErrBadRequest, "invalid payload: missing number")
	status, body := h.NewError(context.Background(), err)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, serrors.ErrBadRequest.Error(), body.Code)
	require.Equal(t, "invalid payload: missing number", body.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := newBareHandler(t)

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized")
	status, body := h.NewError(context.Background(), err)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, serrors.ErrUnauthorized.Error(), body.Code)
	// Should include provided message, not the cause
	require.Equal(t, "unauthorized", body.Message)
}

func TestNewError_WrappedInternal_HidesCause(t *testing.T) {
	h := newBareHandler(t)

	err := serrors.Wrap(serrors.ErrInternal, errors.New("pq: password authentication failed"), "could not store")
	status, body := h.NewError(context.Background(), err)
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "internal error", body.Message)
}

func TestDecode_MalformedAndOversizedBodies(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/v1/identity-numbers/validate", "{not json", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"malformed request body"}`, rec.Body.String())

	big := `{"number":"` + strings.Repeat("1", v1handler.MaxBodyBytes) + `"}`
	rec = ts.do(t, http.MethodPost, "/v1/identity-numbers/validate", big, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"request body too large"}`, rec.Body.String())
}

func TestValidate_ResponseShape(t *testing.T) {
	ts := newTestServer(t)

	ts.identity.EXPECT().Validate("12345678901").Return(identity.ValidationResult{
		Number: "12345678901",
		Reason: "check digit 10 mismatch",
	})

	rec := ts.do(t, http.MethodPost, "/v1/identity-numbers/validate", `{"number":"12345678901"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, false, got["valid"])
	require.Equal(t, "12345678901", got["number"])
	require.Equal(t, "check digit 10 mismatch", got["reason"])
}

func TestNewError_DeadlineExceeded_Timeout(t *testing.T) {
	h := newBareHandler(t)

	err := fmt.Errorf("could not get identity: %w", context.DeadlineExceeded)
	status, body := h.NewError(context.Background(), err)
	require.Equal(t, http.StatusGatewayTimeout, status)
	require.Equal(t, serrors.ErrTimeout.Error(), body.Code)
	require.Equal(t, "request timed out", body.Message)
}
