package fluentdb

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coderi421/fluentdb/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_WithDefaults(t *testing.T) {
	cfg := (&Config{}).withDefaults()
	assert.Equal(t, "mysql", cfg.Driver)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, "", cfg.Database)
	assert.Equal(t, "root", cfg.Username)
	assert.Equal(t, "", cfg.Password)
	assert.Equal(t, "utf8mb4", cfg.Charset)

	// 显式给的值不会被默认值覆盖
	cfg = (&Config{Driver: "sqlite3", Host: "db.internal", Username: "app"}).withDefaults()
	assert.Equal(t, "sqlite3", cfg.Driver)
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, "app", cfg.Username)
}

func TestSplitCharset(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		wantCharset   string
		wantCollation string
	}{
		{
			name:        "plain charset",
			input:       "utf8mb4",
			wantCharset: "utf8mb4",
		},
		{
			name:          "charset with collation",
			input:         "utf8mb4_unicode_ci",
			wantCharset:   "utf8mb4",
			wantCollation: "utf8mb4_unicode_ci",
		},
		{
			name:        "empty",
			input:       "",
			wantCharset: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			charset, collation := splitCharset(tc.input)
			assert.Equal(t, tc.wantCharset, charset)
			assert.Equal(t, tc.wantCollation, collation)
		})
	}
}

func TestConfig_MySQLDSN(t *testing.T) {
	cfg := (&Config{
		Host:     "10.0.0.5",
		Database: "app",
		Username: "svc",
		Password: "secret",
	}).withDefaults()

	dsn := cfg.mysqlDSN("utf8mb4")
	assert.True(t, strings.HasPrefix(dsn, "svc:secret@tcp(10.0.0.5"), dsn)
	assert.Contains(t, dsn, "/app")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&Config{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestFacade(t *testing.T) {
	t.Cleanup(Reset)

	t.Run("table before init", func(t *testing.T) {
		Reset()
		_, err := Table("users")
		assert.Equal(t, ErrNotInitialized, err)
	})

	t.Run("table after init", func(t *testing.T) {
		sqlDB, _, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = sqlDB.Close()
		})

		db := Init(query.OpenDB(sqlDB))
		assert.Same(t, db, Default())

		b, err := Table("users")
		require.NoError(t, err)

		q, err := b.ToSQL()
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM `users`", q.SQL)
	})

	t.Run("reset drops handle", func(t *testing.T) {
		Reset()
		assert.Nil(t, Default())
	})
}
