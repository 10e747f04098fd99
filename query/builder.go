package query

import (
	"context"
	"strings"

	"github.com/coderi421/fluentdb/query/internal/errs"
	"github.com/gotomicro/ekit/slice"
)

// Builder 是单条语句的可变累加器。它不是并发安全的：
// 一个逻辑语句、一个 goroutine 对应一个 Builder
type Builder struct {
	db *DB

	// err 记录链式调用过程中第一个非法参数错误，
	// 在终结方法真正执行之前返回，绝不会把半截语句发给数据库
	err error

	table    string
	columns  []column
	wheres   []condition
	joins    []join
	groupBys []string
	havings  []condition
	orders   []order
	limit    int
	offset   int
}

// column 区分普通标识符和原生表达式。原生表达式由调用方通过
// SelectRaw 显式声明，不做任何字符启发式猜测
type column struct {
	name string
	raw  bool
}

type join struct {
	kind  string // INNER, LEFT, RIGHT
	table string
	left  string
	op    string
	right string
}

type order struct {
	column    string
	direction string // ASC or DESC
}

func newBuilder(db *DB) *Builder {
	return &Builder{
		db:     db,
		limit:  -1,
		offset: -1,
	}
}

// Table sets the target table and clears all accumulated clause state,
// so clauses never leak between unrelated statements.
func (b *Builder) Table(name string) *Builder {
	b.reset()
	b.table = name
	return b
}

// reset clears everything except the table name. It runs after every
// terminal operation so the same instance can be reused.
func (b *Builder) reset() {
	b.err = nil
	b.columns = nil
	b.wheres = nil
	b.joins = nil
	b.groupBys = nil
	b.havings = nil
	b.orders = nil
	b.limit = -1
	b.offset = -1
}

// Select replaces the column list. Calling it without arguments keeps
// the previous list (or the default *).
func (b *Builder) Select(cols ...string) *Builder {
	if len(cols) == 0 {
		return b
	}
	b.columns = slice.Map(cols, func(idx int, src string) column {
		return column{name: src}
	})
	return b
}

// SelectRaw appends a raw expression to the column list, bypassing
// identifier quoting.
func (b *Builder) SelectRaw(expr string) *Builder {
	b.columns = append(b.columns, column{name: expr, raw: true})
	return b
}

// GroupBy appends grouping columns.
func (b *Builder) GroupBy(cols ...string) *Builder {
	b.groupBys = append(b.groupBys, cols...)
	return b
}

// OrderBy appends an ordering. Any direction other than a
// case-insensitive "DESC" is normalized to "ASC".
func (b *Builder) OrderBy(col string, direction string) *Builder {
	dir := "ASC"
	if strings.EqualFold(direction, "DESC") {
		dir = "DESC"
	}
	b.orders = append(b.orders, order{column: col, direction: dir})
	return b
}

// Limit caps the number of returned rows. Negative values are an error.
func (b *Builder) Limit(n int) *Builder {
	if n < 0 {
		b.setErr(errs.NewErrInvalidLimit(n))
		return b
	}
	b.limit = n
	return b
}

// Offset skips the first n rows. Negative values are an error.
func (b *Builder) Offset(n int) *Builder {
	if n < 0 {
		b.setErr(errs.NewErrInvalidOffset(n))
		return b
	}
	b.offset = n
	return b
}

// setErr 只记录第一个错误，后续的链式调用照常累加但不会覆盖它
func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// exec runs the compiled statement through the middleware chain,
// innermost handler last.
func (b *Builder) exec(ctx context.Context, qc *QueryContext, root Handler) *QueryResult {
	handler := root
	mdls := b.db.mdls
	for i := len(mdls) - 1; i >= 0; i-- {
		handler = mdls[i](handler)
	}
	return handler(ctx, qc)
}
