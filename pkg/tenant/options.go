package tenant

import "net/http"

// ErrorHandler handles tenant resolution rejections.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// config holds middleware configuration.
type config struct {
	claimName     string
	requireTenant bool
	errorHandler  ErrorHandler
}

// Option configures the middleware.
type Option func(*config)

// WithClaimName overrides the credential claim read for the clinic id.
func WithClaimName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.claimName = name
		}
	}
}

// WithRequireTenant makes the middleware fail closed: requests for which
// no clinic resolves are rejected instead of proceeding with an
// unfiltered data view.
func WithRequireTenant(require bool) Option {
	return func(c *config) {
		c.requireTenant = require
	}
}

// WithErrorHandler sets a custom handler for rejected requests.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(c *config) {
		if handler != nil {
			c.errorHandler = handler
		}
	}
}
