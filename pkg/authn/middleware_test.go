package authn_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinickit/clinickit/pkg/authn"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	verifier, err := authn.New(signingKey)
	require.NoError(t, err)

	t.Run("valid credential puts identity in context", func(t *testing.T) {
		t.Parallel()

		var seen *authn.Identity
		handler := authn.Middleware(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = authn.IdentityFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		token := signToken(t, jwt.MapClaims{"sub": "vet-7", "exp": time.Now().Add(time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "vet-7", seen.Subject)
	})

	t.Run("missing credential proceeds anonymously", func(t *testing.T) {
		t.Parallel()

		var seen *authn.Identity
		handler := authn.Middleware(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = authn.IdentityFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
		assert.True(t, seen.IsAnonymous())
	})

	t.Run("expired credential is rejected before the handler runs", func(t *testing.T) {
		t.Parallel()

		entered := false
		handler := authn.Middleware(verifier)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			entered = true
		}))

		token := signToken(t, jwt.MapClaims{"sub": "vet-7", "exp": time.Now().Add(-time.Minute).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, entered)
		assert.Contains(t, rec.Body.String(), `"unauthorized"`)
	})

	t.Run("malformed authorization header is rejected", func(t *testing.T) {
		t.Parallel()

		handler := authn.Middleware(verifier)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("trust authority failure surfaces as server error", func(t *testing.T) {
		t.Parallel()

		unreachable, err := authn.NewWithKeyfunc(func(*jwt.Token) (any, error) {
			return nil, errors.New("key server down")
		})
		require.NoError(t, err)

		handler := authn.Middleware(unreachable)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

		token := signToken(t, jwt.MapClaims{"sub": "vet-7"})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestBearerTokenExtractor(t *testing.T) {
	t.Parallel()

	t.Run("extracts bearer token", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer abc.def.ghi")

		token, err := authn.BearerTokenExtractor(req)
		require.NoError(t, err)
		assert.Equal(t, "abc.def.ghi", token)
	})

	t.Run("missing header means no credential", func(t *testing.T) {
		t.Parallel()

		_, err := authn.BearerTokenExtractor(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, authn.ErrNoCredential)
	})

	t.Run("non-bearer scheme is invalid", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")

		_, err := authn.BearerTokenExtractor(req)
		assert.ErrorIs(t, err, authn.ErrInvalidCredential)
	})
}
