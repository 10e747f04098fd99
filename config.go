package fluentdb

import (
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Config carries the connection settings. Every field is optional;
// zero values are replaced with the documented defaults.
type Config struct {
	Driver   string // default "mysql"
	Host     string // default "127.0.0.1"
	Database string // default ""
	Username string // default "root"
	Password string // default ""
	// Charset 支持 <charset> 或 <charset>_<collation> 两种写法，
	// 例如 utf8mb4 或者 utf8mb4_unicode_ci。default "utf8mb4"
	Charset string
}

// withDefaults returns a copy with zero fields filled in.
func (c *Config) withDefaults() *Config {
	res := *c
	if res.Driver == "" {
		res.Driver = "mysql"
	}
	if res.Host == "" {
		res.Host = "127.0.0.1"
	}
	if res.Username == "" {
		res.Username = "root"
	}
	if res.Charset == "" {
		res.Charset = "utf8mb4"
	}
	return &res
}

// splitCharset splits a combined charset string into the pure charset
// and the optional collation. "utf8mb4_unicode_ci" yields charset
// "utf8mb4" and collation "utf8mb4_unicode_ci"; a plain "utf8mb4" has
// no collation.
func splitCharset(s string) (charset string, collation string) {
	idx := strings.IndexByte(s, '_')
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s
}

// mysqlDSN builds the driver connection string via the mysql driver's
// own Config type instead of hand-concatenating it.
func (c *Config) mysqlDSN(charset string) string {
	mc := mysql.NewConfig()
	mc.User = c.Username
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = c.Host
	mc.DBName = c.Database
	mc.Params = map[string]string{
		"charset": charset,
	}
	return mc.FormatDSN()
}
