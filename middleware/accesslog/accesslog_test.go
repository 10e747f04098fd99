package accesslog

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coderi421/fluentdb/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareBuilder(t *testing.T) {
	var captured string
	mdl := NewBuilder().LogFunc(func(log string) {
		captured = log
	}).Build()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE `age` > ?")).
		WithArgs(18).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	db := query.OpenDB(sqlDB, query.DBWithMiddlewares(mdl))
	_, err = db.Table("users").Where("age", ">", 18).Get(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, captured)
	var entry struct {
		ID    string   `json:"id"`
		Type  string   `json:"type"`
		Table string   `json:"table"`
		SQL   string   `json:"sql"`
		Args  []string `json:"args"`
	}
	require.NoError(t, json.Unmarshal([]byte(captured), &entry))
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "SELECT", entry.Type)
	assert.Equal(t, "users", entry.Table)
	assert.Equal(t, "SELECT * FROM `users` WHERE `age` > ?", entry.SQL)
	assert.Equal(t, []string{"18"}, entry.Args)
}

func TestMiddlewareBuilder_LogsError(t *testing.T) {
	var captured string
	mdl := NewBuilder().LogFunc(func(log string) {
		captured = log
	}).Build()

	next := func(ctx context.Context, qc *query.QueryContext) *query.QueryResult {
		return &query.QueryResult{Err: assert.AnError}
	}

	res := mdl(next)(context.Background(), &query.QueryContext{
		Type:  "DELETE",
		Table: "users",
		Query: &query.Query{SQL: "DELETE FROM `users` WHERE `id` = ?", Args: []any{1}},
	})

	assert.Equal(t, assert.AnError, res.Err)
	assert.Contains(t, captured, assert.AnError.Error())
}
