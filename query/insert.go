package query

import (
	"context"
	"database/sql"
)

// Insert compiles and runs an INSERT for the given column-to-value
// mapping and returns the generated primary-key id.
// 空 payload 和缺表名都在发 SQL 之前就报错
func (b *Builder) Insert(ctx context.Context, data map[string]any) (int64, error) {
	defer b.reset()
	if b.err != nil {
		return 0, b.err
	}

	q, err := b.buildInsert(data)
	if err != nil {
		return 0, err
	}

	res := b.exec(ctx, &QueryContext{
		Type:  "INSERT",
		Table: b.table,
		Query: q,
	}, b.execHandler)

	if res.Err != nil {
		return 0, res.Err
	}
	if sqlRes, ok := res.Result.(sql.Result); ok && sqlRes != nil {
		return sqlRes.LastInsertId()
	}
	return 0, nil
}

func (b *Builder) execHandler(ctx context.Context, qc *QueryContext) *QueryResult {
	res, err := b.db.execContext(ctx, qc.Query.SQL, qc.Query.Args...)
	return &QueryResult{
		Result: res,
		Err:    err,
	}
}
