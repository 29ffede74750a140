package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"civic/internal/api/handler/v1handler"
	"civic/pkg/domain"
	"civic/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type keyPair struct {
	priv   *rsa.PrivateKey
	pubPEM string
}

func newKeyPair(tb testing.TB) keyPair {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err)

	return keyPair{
		priv:   priv,
		pubPEM: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})),
	}
}

func (k keyPair) sign(tb testing.TB, claims jwt.RegisteredClaims) string {
	tb.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(k.priv)
	require.NoError(tb, err)

	return signed
}

// validFor returns claims for subject that are valid from now for ttl.
func validFor(subject string, ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()

	return jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func newSecHandlerForTest(t *testing.T, pubPEM string) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err)

	return sh
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	keys := newKeyPair(t)
	sh := newSecHandlerForTest(t, keys.pubPEM)

	uid := uuid.New()
	ctx, err := sh.HandleBearerAuth(context.Background(), keys.sign(t, validFor(uid.String(), time.Hour)))
	require.NoError(t, err)

	got, ok := ctx.Value(v1handler.UserIDKey).(domain.UserID)
	require.True(t, ok)
	require.Equal(t, domain.UserID(uid), got)
	require.Equal(t, domain.UserID(uid), v1handler.GetUserIDFromContext(ctx))
}

func TestHandleBearerAuth_Rejected(t *testing.T) {
	keys := newKeyPair(t)
	other := newKeyPair(t)

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validFor(uuid.NewString(), time.Hour)).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry := validFor(uuid.NewString(), time.Hour)
	noExpiry.ExpiresAt = nil

	expired := validFor(uuid.NewString(), time.Hour)
	expired.IssuedAt = jwt.NewNumericDate(time.Now().Add(-2 * time.Hour))
	expired.NotBefore = expired.IssuedAt
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	tests := []struct {
		name   string
		pubPEM string
		token  string
	}{
		{name: "signed by another key", pubPEM: keys.pubPEM, token: other.sign(t, validFor(uuid.NewString(), time.Hour))},
		{name: "expired", pubPEM: keys.pubPEM, token: keys.sign(t, expired)},
		{name: "without expiry", pubPEM: keys.pubPEM, token: keys.sign(t, noExpiry)},
		{name: "subject is not a uuid", pubPEM: keys.pubPEM, token: keys.sign(t, validFor("not-a-uuid", time.Hour))},
		{name: "hmac algorithm", pubPEM: keys.pubPEM, token: hs256},
		{name: "garbage", pubPEM: keys.pubPEM, token: "a.b.c"},
		{name: "no key configured", pubPEM: "", token: keys.sign(t, validFor(uuid.NewString(), time.Hour))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := newSecHandlerForTest(t, tt.pubPEM)
			_, err := sh.HandleBearerAuth(context.Background(), tt.token)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}

func TestSecHandler_Middleware(t *testing.T) {
	keys := newKeyPair(t)
	sh := newSecHandlerForTest(t, keys.pubPEM)

	uid := uuid.New()
	var seen domain.UserID
	h := sh.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = v1handler.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"missing bearer token"}`, rec.Body.String())
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+keys.sign(t, validFor(uid.String(), time.Hour)))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, domain.UserID(uid), seen)
	})
}
