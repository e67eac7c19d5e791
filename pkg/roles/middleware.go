package roles

import (
	"net/http"
	"slices"

	"github.com/clinickit/clinickit/core"
	"github.com/clinickit/clinickit/pkg/authn"
)

// Require permits the request only when the verified identity carries at
// least one of the given authorities. Anonymous callers get unauthorized,
// authenticated callers without a matching authority get forbidden.
// Authorization happens here, before any persistence runs.
func Require(authorities ...string) func(http.Handler) http.Handler {
	required := make([]string, 0, len(authorities))
	for _, a := range authorities {
		required = append(required, Canonical(a))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := authn.IdentityFromContext(r.Context())
			if !ok || identity.IsAnonymous() {
				core.WriteError(w, core.ErrUnauthorized)
				return
			}

			granted := Authorities(identity)
			for _, a := range required {
				if slices.Contains(granted, a) {
					next.ServeHTTP(w, r)
					return
				}
			}

			core.WriteError(w, core.ErrForbidden)
		})
	}
}
