// Package fluentdb wires the query builder to a configured database
// connection and exposes an optional process-wide facade.
package fluentdb

import (
	"database/sql"
	"fmt"

	"github.com/coderi421/fluentdb/env"
	"github.com/coderi421/fluentdb/query"
)

// ConnectionError wraps a driver failure during Open so callers can
// tell configuration problems from later execution errors.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("fluentdb: failed to open connection: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Open builds a database handle from cfg. A nil cfg uses the defaults.
// If the charset carries a collation, a session-level SET NAMES is
// issued after connecting.
func Open(cfg *Config, opts ...query.DBOption) (*query.DB, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg = cfg.withDefaults()
	charset, collation := splitCharset(cfg.Charset)

	var dsn string
	switch cfg.Driver {
	case "mysql":
		dsn = cfg.mysqlDSN(charset)
	case "sqlite3":
		// sqlite 的 DSN 就是数据库文件路径
		dsn = cfg.Database
	default:
		return nil, fmt.Errorf("fluentdb: unsupported driver %q", cfg.Driver)
	}

	sqlDB, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, &ConnectionError{Err: err}
	}

	if collation != "" && cfg.Driver == "mysql" {
		if _, err = sqlDB.Exec("SET NAMES " + charset + " COLLATE " + collation); err != nil {
			_ = sqlDB.Close()
			return nil, &ConnectionError{Err: err}
		}
	}

	dialect := query.MySQL
	if cfg.Driver == "sqlite3" {
		dialect = query.SQLite3
	}
	opts = append([]query.DBOption{query.DBWithDialect(dialect)}, opts...)
	return query.OpenDB(sqlDB, opts...), nil
}

// OpenEnv reads the DB_* connection settings from e and delegates to
// Open. Unset keys fall back to the same defaults Open applies.
func OpenEnv(e *env.Env, opts ...query.DBOption) (*query.DB, error) {
	cfg := &Config{
		Driver:   e.Get("DB_DRIVER", ""),
		Host:     e.Get("DB_HOST", ""),
		Database: e.Get("DB_NAME", ""),
		Username: e.Get("DB_USER", ""),
		Password: e.Get("DB_PASS", ""),
		Charset:  e.Get("DB_CHARSET", ""),
	}
	return Open(cfg, opts...)
}
