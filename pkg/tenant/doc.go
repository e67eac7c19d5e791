// Package tenant propagates the caller's clinic through the lifetime of
// a request and resolves it from verified credentials.
//
// The clinic id is held as a request-context value, never in shared
// mutable state. That choice carries the whole isolation guarantee:
// concurrent requests are isolated by construction, a worker goroutine
// reused for the next request cannot observe a stale value, and the
// value is released on every exit path including panics and timeouts.
// Nothing needs to remember to clean up.
//
// Resolution order within a request is fixed by middleware ordering:
// authn.Middleware verifies the credential, then tenant.Middleware reads
// the clinic claim and scopes the id, then handlers run. The persistence
// layer (pkg/tenantdb) consumes the value on every transactional unit of
// work.
//
//	router.Use(authn.Middleware(verifier))
//	router.Use(tenant.Middleware(tenant.WithRequireTenant(true)))
//
// The claim is accepted as an integer, a string-encoded integer, or
// absent; anything else resolves as absent. By default a request without
// a resolvable clinic proceeds with an empty tenant context, a fail-open
// stance kept for compatibility with deployments that have legitimate
// cross-clinic callers. Deployments without such callers should prefer
// WithRequireTenant(true).
package tenant
