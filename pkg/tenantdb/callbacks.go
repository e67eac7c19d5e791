package tenantdb

import (
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	"github.com/clinickit/clinickit/pkg/tenant"
)

// registerCallbacks installs the row-visibility predicate on every
// statement class. The callbacks run before GORM builds SQL, so the
// predicate is part of the statement itself: no call site can issue a
// model query that skips it while a clinic is in scope.
func registerCallbacks(gdb *gorm.DB, cfg *config) error {
	restrict := restrictToTenant(cfg)

	if err := gdb.Callback().Query().Before("gorm:query").Register("clinickit:tenant_query", restrict); err != nil {
		return err
	}
	if err := gdb.Callback().Row().Before("gorm:row").Register("clinickit:tenant_row", restrict); err != nil {
		return err
	}
	if err := gdb.Callback().Update().Before("gorm:update").Register("clinickit:tenant_update", restrict); err != nil {
		return err
	}
	if err := gdb.Callback().Delete().Before("gorm:delete").Register("clinickit:tenant_delete", restrict); err != nil {
		return err
	}
	if err := gdb.Callback().Create().Before("gorm:create").Register("clinickit:tenant_create", stampTenant(cfg)); err != nil {
		return err
	}
	return nil
}

// restrictToTenant appends the tenant predicate to statements whose model
// carries the tenant column. Models without the column (shared reference
// data) pass through untouched. No clinic in the statement context means
// no predicate, the fail-open stance documented on Transaction.
func restrictToTenant(cfg *config) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		clinicID, ok := tenant.IDFromContext(db.Statement.Context)
		if !ok {
			return
		}
		if db.Statement.Schema == nil {
			return
		}

		field := db.Statement.Schema.LookUpField(cfg.column)
		if field == nil {
			return
		}

		db.Statement.AddClause(clause.Where{Exprs: []clause.Expression{
			clause.Eq{
				Column: clause.Column{Table: clause.CurrentTable, Name: field.DBName},
				Value:  clinicID,
			},
		}})
	}
}

// stampTenant writes the clinic id into rows being created. A zero column
// is filled in; a row already carrying a different clinic id is rejected,
// because silently re-homing a row across tenants is exactly the bug this
// layer exists to prevent.
func stampTenant(cfg *config) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		clinicID, ok := tenant.IDFromContext(db.Statement.Context)
		if !ok {
			return
		}
		if db.Statement.Schema == nil {
			return
		}

		field := db.Statement.Schema.LookUpField(cfg.column)
		if field == nil {
			return
		}

		switch db.Statement.ReflectValue.Kind() {
		case reflect.Slice, reflect.Array:
			for i := 0; i < db.Statement.ReflectValue.Len(); i++ {
				if err := stampValue(db, field, db.Statement.ReflectValue.Index(i), clinicID); err != nil {
					_ = db.AddError(err)
					return
				}
			}
		case reflect.Struct:
			if err := stampValue(db, field, db.Statement.ReflectValue, clinicID); err != nil {
				_ = db.AddError(err)
			}
		}
	}
}

func stampValue(db *gorm.DB, field *schema.Field, rv reflect.Value, clinicID int64) error {
	current, isZero := field.ValueOf(db.Statement.Context, rv)
	if !isZero {
		// The column may be declared as any integer width; compare the
		// numeric value, not the Go type.
		switch cv := reflect.ValueOf(current); {
		case cv.CanInt():
			if cv.Int() != clinicID {
				return ErrTenantMismatch
			}
		case cv.CanUint():
			if clinicID < 0 || cv.Uint() != uint64(clinicID) {
				return ErrTenantMismatch
			}
		}
	}
	return field.Set(db.Statement.Context, rv, clinicID)
}
