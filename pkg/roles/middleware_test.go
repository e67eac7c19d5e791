package roles_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clinickit/clinickit/pkg/authn"
	"github.com/clinickit/clinickit/pkg/roles"
)

func TestRequire(t *testing.T) {
	t.Parallel()

	serve := func(t *testing.T, mw func(http.Handler) http.Handler, id *authn.Identity) *httptest.ResponseRecorder {
		t.Helper()

		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if id != nil {
			req = req.WithContext(authn.WithIdentity(req.Context(), id))
		}

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("matching authority is permitted", func(t *testing.T) {
		t.Parallel()

		id := identityWith(map[string]any{"roles": []any{"VETERINARIAN"}})
		rec := serve(t, roles.Require("VETERINARIAN", "ADMIN"), id)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("insufficient authority is forbidden", func(t *testing.T) {
		t.Parallel()

		id := identityWith(map[string]any{"role": "OWNER"})
		rec := serve(t, roles.Require("ADMIN"), id)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), `"forbidden"`)
	})

	t.Run("anonymous caller is unauthorized", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, roles.Require("ADMIN"), authn.Anonymous())
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing identity is unauthorized", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, roles.Require("ADMIN"), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("require accepts unprefixed names", func(t *testing.T) {
		t.Parallel()

		id := identityWith(map[string]any{"roles": []any{"ROLE_STAFF"}})
		rec := serve(t, roles.Require("staff"), id)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
