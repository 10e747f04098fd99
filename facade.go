package fluentdb

import (
	"errors"

	"github.com/coderi421/fluentdb/env"
	"github.com/coderi421/fluentdb/query"
)

// ErrNotInitialized 代表 facade 还没有通过 Init 系列方法设置连接
var ErrNotInitialized = errors.New("fluentdb: facade not initialized, call Init first")

// defaultDB is process-wide mutable state with no synchronization.
// 这是刻意的简化：并发调用方要么自己加锁，要么别用 facade，
// 直接把 *query.DB 当作显式句柄传递
var defaultDB *query.DB

// Init sets the database handle the facade proxies to and returns it.
func Init(db *query.DB) *query.DB {
	defaultDB = db
	return db
}

// InitFromConfig opens a connection from cfg and installs it as the
// facade's handle.
func InitFromConfig(cfg *Config, opts ...query.DBOption) (*query.DB, error) {
	db, err := Open(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return Init(db), nil
}

// InitFromEnv opens a connection from the DB_* keys in e and installs
// it as the facade's handle.
func InitFromEnv(e *env.Env, opts ...query.DBOption) (*query.DB, error) {
	db, err := OpenEnv(e, opts...)
	if err != nil {
		return nil, err
	}
	return Init(db), nil
}

// Table proxies to the held handle's Table.
func Table(name string) (*query.Builder, error) {
	if defaultDB == nil {
		return nil, ErrNotInitialized
	}
	return defaultDB.Table(name), nil
}

// Default returns the currently installed handle, or nil.
func Default() *query.DB {
	return defaultDB
}

// Reset drops the installed handle. Mainly for tests.
func Reset() {
	defaultDB = nil
}
