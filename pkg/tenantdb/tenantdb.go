package tenantdb

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/clinickit/clinickit/pkg/tenant"
)

// enabledKey marks a session on which the storage-side filter has been
// activated, making duplicate activation a no-op. It lives on the session
// context because GORM propagates the context to every statement derived
// from the session.
type enabledKey struct{}

// SessionVarSetter issues the storage-engine directive binding the
// current transaction to a clinic. The default implementation sets a
// transaction-scoped PostgreSQL session variable; tests inject fakes.
type SessionVarSetter func(tx *gorm.DB, clinicID int64) error

// DB is the tenant-scoped storage entry point. It deliberately offers no
// way to obtain an unscoped handle: every unit of work goes through
// Transaction, which activates both enforcement layers before the first
// read or write. Stores built on DB structurally cannot forget the filter.
type DB struct {
	gdb *gorm.DB
	cfg *config
}

// New wraps a GORM database in the tenant enforcement layer. The
// row-visibility callbacks are registered once here and from then on
// apply to every statement executed through the handle, keyed off the
// clinic id in each statement's context.
func New(gdb *gorm.DB, opts ...Option) (*DB, error) {
	if gdb == nil {
		return nil, ErrMissingDB
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.setVar == nil {
		cfg.setVar = setSessionVariable(cfg.sessionVar)
	}

	if err := registerCallbacks(gdb, cfg); err != nil {
		return nil, err
	}

	return &DB{gdb: gdb, cfg: cfg}, nil
}

// Transaction runs fn as one transactional unit of work scoped to the
// clinic in ctx.
//
// When a clinic id is present, the storage-engine session variable is set
// transaction-scoped on the borrowed connection before fn runs, fresh
// for this transaction and never assumed to persist from a prior one on
// the pooled connection, and the registered callbacks restrict every
// statement inside fn to rows of that clinic. A failure to set the
// variable aborts the unit of work: filtering that was attempted and
// failed must never degrade into an unfiltered transaction.
//
// When no clinic id is present the unit of work runs unfiltered, unless
// the DB was built with WithRequireTenant(true), in which case it fails
// with ErrNoTenant before touching storage.
func (d *DB) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	clinicID, ok := tenant.IDFromContext(ctx)
	if !ok && d.cfg.requireTenant {
		return ErrNoTenant
	}

	return d.gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok {
			scoped, err := d.Enable(tx, clinicID)
			if err != nil {
				return err
			}
			return fn(scoped)
		}
		return fn(tx)
	})
}

// Enable activates the storage-side filter for the given clinic on an
// open transaction. Enabling an already-enabled session with the same
// clinic is a no-op; enabling it with a different clinic is a programming
// error and fails.
func (d *DB) Enable(tx *gorm.DB, clinicID int64) (*gorm.DB, error) {
	if prev, found := tx.Statement.Context.Value(enabledKey{}).(int64); found {
		if prev == clinicID {
			return tx, nil
		}
		return nil, ErrTenantMismatch
	}

	if err := d.cfg.setVar(tx, clinicID); err != nil {
		return nil, errors.Join(ErrFilterActivation, err)
	}

	return tx.WithContext(context.WithValue(tx.Statement.Context, enabledKey{}, clinicID)), nil
}

// SessionVariable returns the name of the storage-engine variable the
// row-level security policies key off.
func (d *DB) SessionVariable() string {
	return d.cfg.sessionVar
}

// setSessionVariable returns the default transaction-scoped directive.
// set_config with is_local=true reverts at transaction end, so the value
// can never leak to the next borrower of the pooled connection. Dialects
// without session variables (sqlite in tests) skip the directive and rely
// on the application-level callbacks alone.
func setSessionVariable(name string) SessionVarSetter {
	return func(tx *gorm.DB, clinicID int64) error {
		if tx.Dialector.Name() != "postgres" {
			return nil
		}
		return tx.Exec("SELECT set_config(?, ?, true)", name, strconv.FormatInt(clinicID, 10)).Error
	}
}
