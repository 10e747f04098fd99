package query

var (
	MySQL   Dialect = &mysqlDialect{}
	SQLite3 Dialect = &sqlite3Dialect{}
)

// Dialect 屏蔽不同数据库方言之间的差异，目前只有标识符的引用字符
type Dialect interface {
	quoter() byte
}

type mysqlDialect struct{}

func (m *mysqlDialect) quoter() byte {
	return '`'
}

type sqlite3Dialect struct{}

func (s *sqlite3Dialect) quoter() byte {
	return '`'
}

// dialectFor maps a database/sql driver name to its dialect.
// Unknown drivers fall back to the MySQL dialect.
func dialectFor(driver string) Dialect {
	switch driver {
	case "sqlite3":
		return SQLite3
	default:
		return MySQL
	}
}
