// Package tenantdb is the persistence enforcement point of the isolation
// layer: every transactional unit of work issued through it is scoped to
// the clinic resolved for the current request, at two independent layers.
//
// The first layer is application-level: callbacks registered on the GORM
// handle append a tenant predicate to every query, row, update, and
// delete statement whose model carries the clinic column, and stamp the
// column on creates. Because the callbacks key off the statement context,
// no repository or handler can issue a model statement that forgets the
// filter.
//
// The second layer is the storage engine itself: at the start of each
// transaction a transaction-scoped session variable is set on the
// borrowed connection, and the row-level security policies installed by
// the schema migrations (see migrations/) enforce the same predicate
// inside PostgreSQL independently of the application, as defense in
// depth should the first layer ever be bypassed. The variable is set with
// set_config(..., true), so it reverts at transaction end and can never
// ride a pooled connection into an unrelated transaction.
//
// DB is a capability object: its only transactional surface is
// Transaction, so an unscoped handle is not obtainable from it.
//
//	db, _ := tenantdb.New(gormDB)
//	err := db.Transaction(ctx, func(tx *gorm.DB) error {
//		return tx.Find(&pets).Error // only rows of the clinic in ctx
//	})
//
// Raw SQL executed via Exec/Raw bypasses the ORM schema and therefore the
// first layer; the storage-engine policies still apply to it.
package tenantdb
