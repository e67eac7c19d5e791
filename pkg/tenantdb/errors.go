package tenantdb

import "errors"

var (
	// ErrMissingDB is returned when New is called without a database handle.
	ErrMissingDB = errors.New("tenantdb: missing gorm database handle")

	// ErrNoTenant is returned by Transaction in require-tenant mode when
	// the context carries no clinic id.
	ErrNoTenant = errors.New("tenantdb: no clinic in context for transactional unit of work")

	// ErrFilterActivation is returned when the storage engine rejects the
	// session-variable directive. The enclosing unit of work must abort:
	// proceeding would silently run unfiltered.
	ErrFilterActivation = errors.New("tenantdb: failed to activate tenant filter on storage session")

	// ErrTenantMismatch is returned when a session or row is already
	// bound to a different clinic than the one in scope.
	ErrTenantMismatch = errors.New("tenantdb: clinic id mismatch")
)
