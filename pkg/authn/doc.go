// Package authn verifies bearer credentials and produces the verified
// identity every later stage of request handling consumes.
//
// Verification is deliberately narrow: it proves the credential is
// genuine and current, extracts its claims verbatim, and stops. Tenant
// resolution, role mapping, and authorization all happen downstream on
// the resulting Identity.
//
// Two failure classes exist and are never conflated: a bad credential
// (malformed, unsigned, expired) is the caller's fault and surfaces as
// unauthorized; a failing trust authority is an infrastructure fault and
// surfaces as a server error. Requests carrying no credential at all are
// not failures; they proceed with an anonymous identity so routes that
// permit anonymous access keep working.
//
//	verifier, _ := authn.New([]byte(cfg.SigningKey))
//	router.Use(authn.Middleware(verifier))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		id, _ := authn.IdentityFromContext(r.Context())
//		if id.IsAnonymous() { ... }
//	}
package authn
