package tenantdb

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open builds the tenant-scoped storage entry point over an existing pgx
// pool, so the enforcement layer shares connections with the rest of the
// application instead of maintaining a second pool. This is the intended
// production wiring; New accepts any GORM handle for tests and other
// dialects.
func Open(pool *pgxpool.Pool, gormCfg *gorm.Config, opts ...Option) (*DB, error) {
	if pool == nil {
		return nil, ErrMissingDB
	}
	if gormCfg == nil {
		gormCfg = &gorm.Config{}
	}

	gdb, err := gorm.Open(gormpg.New(gormpg.Config{Conn: stdlib.OpenDBFromPool(pool)}), gormCfg)
	if err != nil {
		return nil, err
	}

	return New(gdb, opts...)
}
