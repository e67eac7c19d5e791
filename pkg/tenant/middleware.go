package tenant

import (
	"net/http"

	"github.com/clinickit/clinickit/core"
	"github.com/clinickit/clinickit/pkg/authn"
)

// DefaultClaimName is the credential claim carrying the clinic id.
const DefaultClaimName = "clinic_id"

// Middleware resolves the caller's clinic from the verified identity and
// scopes it to the request. It runs after authn.Middleware.
//
// Resolution is lenient: the claim may arrive as an integer, a
// string-encoded integer, or not at all; unparseable values resolve as
// absent rather than failing the request. When no clinic resolves the
// request proceeds with an empty tenant context by default, which makes
// downstream persistence run unfiltered; callers wanting a hard
// guarantee set WithRequireTenant(true) to reject such requests instead.
//
// The clinic id is carried on the request context, so it is released on
// every exit path, including panic and timeout, before the
// connection's worker picks up another request.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		claimName:    DefaultClaimName,
		errorHandler: defaultErrorHandler,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := Absent()
			if identity, ok := authn.IdentityFromContext(r.Context()); ok && !identity.IsAnonymous() {
				if raw, ok := identity.Claim(cfg.claimName); ok {
					res = ParseClaim(raw)
				}
			}

			if !res.Found {
				if cfg.requireTenant {
					cfg.errorHandler(w, r, ErrNoTenant)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithID(r.Context(), res.ID)))
		})
	}
}

// defaultErrorHandler distinguishes who is being turned away: a caller
// with no verified identity is unauthorized, while an authenticated
// caller whose credential resolves no clinic is forbidden.
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, _ error) {
	if identity, ok := authn.IdentityFromContext(r.Context()); !ok || identity.IsAnonymous() {
		core.WriteError(w, core.ErrUnauthorized)
		return
	}
	core.WriteError(w, core.ErrForbidden)
}
