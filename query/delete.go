package query

import (
	"context"
	"database/sql"
)

// Delete compiles and runs a DELETE and returns the affected-row count.
// 和 Update 一样，没有 WHERE 直接拒绝执行
func (b *Builder) Delete(ctx context.Context) (int64, error) {
	defer b.reset()
	if b.err != nil {
		return 0, b.err
	}

	q, err := b.buildDelete()
	if err != nil {
		return 0, err
	}

	res := b.exec(ctx, &QueryContext{
		Type:  "DELETE",
		Table: b.table,
		Query: q,
	}, b.execHandler)

	if res.Err != nil {
		return 0, res.Err
	}
	if sqlRes, ok := res.Result.(sql.Result); ok && sqlRes != nil {
		return sqlRes.RowsAffected()
	}
	return 0, nil
}
