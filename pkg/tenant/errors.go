package tenant

import "errors"

var (
	// ErrNoTenant is returned when tenant resolution is required but no
	// clinic id could be resolved from the verified identity.
	ErrNoTenant = errors.New("tenant: no clinic resolved for request")
)
