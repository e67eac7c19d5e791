package tenant_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinickit/clinickit/pkg/authn"
	"github.com/clinickit/clinickit/pkg/tenant"
)

// identified builds a request whose context already carries a verified
// identity, the state tenant.Middleware runs in.
func identified(claims map[string]any) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	id := &authn.Identity{Subject: "vet-7", Claims: claims}
	return req.WithContext(authn.WithIdentity(req.Context(), id))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	capture := func(got *tenant.Resolution) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, ok := tenant.IDFromContext(r.Context()); ok {
				*got = tenant.Found(id)
			} else {
				*got = tenant.Absent()
			}
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("integer claim resolves", func(t *testing.T) {
		t.Parallel()

		var got tenant.Resolution
		handler := tenant.Middleware()(capture(&got))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, identified(map[string]any{"clinic_id": float64(42)}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, tenant.Found(42), got)
	})

	t.Run("string-encoded claim resolves", func(t *testing.T) {
		t.Parallel()

		var got tenant.Resolution
		handler := tenant.Middleware()(capture(&got))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, identified(map[string]any{"clinic_id": "42"}))

		assert.Equal(t, tenant.Found(42), got)
	})

	t.Run("unparseable claim proceeds without tenant", func(t *testing.T) {
		t.Parallel()

		var got tenant.Resolution
		handler := tenant.Middleware()(capture(&got))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, identified(map[string]any{"clinic_id": "abc"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, tenant.Absent(), got)
	})

	t.Run("missing claim proceeds without tenant", func(t *testing.T) {
		t.Parallel()

		var got tenant.Resolution
		handler := tenant.Middleware()(capture(&got))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, identified(map[string]any{"sub": "vet-7"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, tenant.Absent(), got)
	})

	t.Run("anonymous identity resolves no tenant", func(t *testing.T) {
		t.Parallel()

		var got tenant.Resolution
		handler := tenant.Middleware()(capture(&got))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(authn.WithIdentity(req.Context(), authn.Anonymous()))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, tenant.Absent(), got)
	})

	t.Run("custom claim name", func(t *testing.T) {
		t.Parallel()

		var got tenant.Resolution
		handler := tenant.Middleware(tenant.WithClaimName("tid"))(capture(&got))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, identified(map[string]any{"tid": float64(9)}))

		assert.Equal(t, tenant.Found(9), got)
	})

	t.Run("require tenant rejects unresolved requests", func(t *testing.T) {
		t.Parallel()

		entered := false
		handler := tenant.Middleware(tenant.WithRequireTenant(true))(
			http.HandlerFunc(func(http.ResponseWriter, *http.Request) { entered = true }),
		)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, identified(map[string]any{"sub": "vet-7"}))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, entered)
		assert.Contains(t, rec.Body.String(), `"forbidden"`)
	})

	t.Run("require tenant rejects anonymous callers as unauthorized", func(t *testing.T) {
		t.Parallel()

		entered := false
		handler := tenant.Middleware(tenant.WithRequireTenant(true))(
			http.HandlerFunc(func(http.ResponseWriter, *http.Request) { entered = true }),
		)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(authn.WithIdentity(req.Context(), authn.Anonymous()))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, entered)
		assert.Contains(t, rec.Body.String(), `"unauthorized"`)
	})

	t.Run("require tenant passes resolved requests", func(t *testing.T) {
		t.Parallel()

		var got tenant.Resolution
		handler := tenant.Middleware(tenant.WithRequireTenant(true))(capture(&got))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, identified(map[string]any{"clinic_id": float64(42)}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, tenant.Found(42), got)
	})

	t.Run("tenant does not outlive the request", func(t *testing.T) {
		t.Parallel()

		handler := tenant.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := identified(map[string]any{"clinic_id": float64(42)})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		// The original request context never carried the value; only the
		// derived context handed to the handler did, and that died with
		// the request.
		_, ok := tenant.IDFromContext(req.Context())
		assert.False(t, ok)
	})

	t.Run("panicking handler cannot leak the tenant", func(t *testing.T) {
		t.Parallel()

		handler := tenant.Middleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("handler blew up")
		}))

		req := identified(map[string]any{"clinic_id": float64(42)})
		rec := httptest.NewRecorder()

		require.Panics(t, func() {
			handler.ServeHTTP(rec, req)
		})

		_, ok := tenant.IDFromContext(req.Context())
		assert.False(t, ok)
	})
}
