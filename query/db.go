package query

import (
	"context"
	"database/sql"
)

type core struct {
	dialect Dialect
	mdls    []Middleware
}

type DBOption func(*DB)

// DB wraps a *sql.DB together with the dialect and middleware chain
// shared by every builder it hands out.
type DB struct {
	core
	db *sql.DB
}

// Open opens a database handle for the given driver and DSN.
// The dialect is derived from the driver name unless overridden by an option.
// 驱动需要调用方自己 import 注册
func Open(driver string, dsn string, opts ...DBOption) (*DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	opts = append([]DBOption{DBWithDialect(dialectFor(driver))}, opts...)
	return OpenDB(db, opts...), nil
}

// OpenDB wraps an existing *sql.DB. It is the entry point for tests that
// hand in a sqlmock connection.
func OpenDB(db *sql.DB, opts ...DBOption) *DB {
	res := &DB{
		core: core{
			dialect: MySQL,
		},
		db: db,
	}

	for _, opt := range opts {
		opt(res)
	}
	return res
}

// DBWithDialect sets the SQL dialect used when compiling statements.
func DBWithDialect(d Dialect) DBOption {
	return func(db *DB) {
		db.dialect = d
	}
}

// DBWithMiddlewares registers the middlewares every statement execution
// passes through, outermost first.
func DBWithMiddlewares(mdls ...Middleware) DBOption {
	return func(db *DB) {
		db.mdls = mdls
	}
}

// Table starts a fresh builder targeting the given table.
func (db *DB) Table(name string) *Builder {
	b := newBuilder(db)
	return b.Table(name)
}

func (db *DB) Close() error {
	return db.db.Close()
}

func (db *DB) queryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

func (db *DB) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}
