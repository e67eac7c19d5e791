package tenantdb

// DefaultTenantColumn is the column carrying the clinic id on scoped tables.
const DefaultTenantColumn = "clinic_id"

// DefaultSessionVariable is the PostgreSQL variable the row-level
// security policies read via current_setting.
const DefaultSessionVariable = "app.current_clinic"

// config holds enforcement-layer configuration.
type config struct {
	column        string
	sessionVar    string
	requireTenant bool
	setVar        SessionVarSetter
}

func defaultConfig() *config {
	return &config{
		column:     DefaultTenantColumn,
		sessionVar: DefaultSessionVariable,
	}
}

// Option configures the enforcement layer.
type Option func(*config)

// WithTenantColumn overrides the column name identifying a row's clinic.
func WithTenantColumn(name string) Option {
	return func(c *config) {
		if name != "" {
			c.column = name
		}
	}
}

// WithSessionVariable overrides the storage-engine variable name the RLS
// policies key off.
func WithSessionVariable(name string) Option {
	return func(c *config) {
		if name != "" {
			c.sessionVar = name
		}
	}
}

// WithRequireTenant makes Transaction fail closed: units of work with no
// clinic in context are rejected instead of running unfiltered.
func WithRequireTenant(require bool) Option {
	return func(c *config) {
		c.requireTenant = require
	}
}

// WithSessionVarSetter replaces the directive that binds a transaction to
// a clinic on the storage engine. Intended for tests and for engines with
// a different session-variable mechanism.
func WithSessionVarSetter(setter SessionVarSetter) Option {
	return func(c *config) {
		c.setVar = setter
	}
}
