package query

import (
	"context"
	"database/sql"
)

// Update compiles and runs an UPDATE for the given assignments and
// returns the affected-row count. It refuses to run without a WHERE
// clause so a typo cannot rewrite a whole table.
func (b *Builder) Update(ctx context.Context, data map[string]any) (int64, error) {
	defer b.reset()
	if b.err != nil {
		return 0, b.err
	}

	q, err := b.buildUpdate(data)
	if err != nil {
		return 0, err
	}

	res := b.exec(ctx, &QueryContext{
		Type:  "UPDATE",
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
