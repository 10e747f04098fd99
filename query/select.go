package query

import (
	"context"
	"database/sql"
	"strconv"
)

// Get compiles and runs the SELECT, returning every matching row in the
// order the driver produced them. Clause state is reset afterwards,
// keeping only the table name.
func (b *Builder) Get(ctx context.Context) ([]Row, error) {
	defer b.reset()
	if b.err != nil {
		return nil, b.err
	}

	q, err := b.buildSelect()
	if err != nil {
		return nil, err
	}

	res := b.exec(ctx, &QueryContext{
		Type:  "SELECT",
		Table: b.table,
		Query: q,
	}, b.queryHandler)

	if res.Err != nil {
		return nil, res.Err
	}
	rows, _ := res.Result.([]Row)
	return rows, nil
}

// First forces LIMIT 1 when no limit is set, runs the query and returns
// the first row. Zero matches return (nil, nil), never an error.
func (b *Builder) First(ctx context.Context) (Row, error) {
	if b.limit < 0 {
		b.limit = 1
	}
	rows, err := b.Get(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Count swaps the column list for a COUNT(*) aggregate, runs First and
// restores the original column list. No matching row counts as 0.
func (b *Builder) Count(ctx context.Context) (int64, error) {
	saved := b.columns
	b.columns = []column{{name: "COUNT(*) AS aggregate", raw: true}}
	row, err := b.First(ctx)
	// First 内部会 reset，这里把列选择恢复成调用前的样子
	b.columns = saved
	if err != nil {
		return 0, err
	}
	if row == nil {
		return 0, nil
	}
	return toInt64(row["aggregate"]), nil
}

// ToSQL compiles the current SELECT without executing it and without
// mutating builder state: calling it twice yields identical output.
func (b *Builder) ToSQL() (*Query, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.buildSelect()
}

// ToRawSQL compiles the current SELECT and substitutes the bindings as
// escaped literals. For human debugging only; never execute the result.
func (b *Builder) ToRawSQL() (string, error) {
	q, err := b.ToSQL()
	if err != nil {
		return "", err
	}
	return interpolate(q.SQL, q.Args), nil
}

func (b *Builder) queryHandler(ctx context.Context, qc *QueryContext) *QueryResult {
	rows, err := b.db.queryContext(ctx, qc.Query.SQL, qc.Query.Args...)
	if err != nil {
		return &QueryResult{Err: err}
	}
	defer rows.Close()

	out, err := scanRows(rows)
	return &QueryResult{Result: out, Err: err}
}

// scanRows maps every row onto column-name keyed maps using the result
// metadata. mysql 驱动对文本列返回 []byte，这里统一转成 string
func scanRows(rows *sql.Rows) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err = rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			if bs, ok := vals[i].([]byte); ok {
				row[col] = string(bs)
			} else {
				row[col] = vals[i]
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func toInt64(v any) int64 {
	switch val := v.(type) {
	case int64:
		return val
	case int32:
		return int64(val)
	case int:
		return int64(val)
	case uint64:
		return int64(val)
	case float64:
		// JSON 反序列化出来的数字都是 float64，比如走 redis 缓存的结果集
		return int64(val)
	case float32:
		return int64(val)
	case string:
		n, _ := strconv.ParseInt(val, 10, 64)
		return n
	case []byte:
		n, _ := strconv.ParseInt(string(val), 10, 64)
		return n
	default:
		return 0
	}
}
