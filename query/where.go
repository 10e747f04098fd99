package query

// 只负责累加 WHERE/HAVING 里的一组条件，编译在 compile.go 中

type condKind uint8

const (
	condBasic condKind = iota
	condNull
	condNotNull
	condIn
	condNotIn
	condBetween
	condNotBetween
	condRaw
)

// condition 是布尔链上的一个片段：连接词 + 条件形状 + 绑定参数。
// 第一个片段的连接词在编译时不输出
type condition struct {
	conj   string // AND or OR
	kind   condKind
	column string
	op     string
	args   []any
	raw    string
}

// Where appends a bound comparison with an explicit operator,
// joined to the previous condition with AND.
func (b *Builder) Where(col string, op string, value any) *Builder {
	return b.addWhere(condition{conj: "AND", kind: condBasic, column: col, op: op, args: []any{value}})
}

// WhereEq is shorthand for Where(col, "=", value).
// 动态判断参数个数的重载被拆成了两个显式方法
func (b *Builder) WhereEq(col string, value any) *Builder {
	return b.Where(col, "=", value)
}

// OrWhere appends a bound comparison joined with OR.
func (b *Builder) OrWhere(col string, op string, value any) *Builder {
	return b.addWhere(condition{conj: "OR", kind: condBasic, column: col, op: op, args: []any{value}})
}

// OrWhereEq is shorthand for OrWhere(col, "=", value).
func (b *Builder) OrWhereEq(col string, value any) *Builder {
	return b.OrWhere(col, "=", value)
}

// WhereNull appends an IS NULL check. No binding is produced.
func (b *Builder) WhereNull(col string) *Builder {
	return b.addWhere(condition{conj: "AND", kind: condNull, column: col})
}

// WhereNotNull appends an IS NOT NULL check.
func (b *Builder) WhereNotNull(col string) *Builder {
	return b.addWhere(condition{conj: "AND", kind: condNotNull, column: col})
}

// WhereIn appends an IN (?,?,...) check with one binding per value.
// 空集合会编译成恒假条件 1 = 0，因为 IN () 在多数方言里是非法 SQL
func (b *Builder) WhereIn(col string, values []any) *Builder {
	return b.addWhere(condition{conj: "AND", kind: condIn, column: col, args: values})
}

// WhereNotIn appends a NOT IN check. An empty value set compiles to the
// always-true condition 1 = 1.
func (b *Builder) WhereNotIn(col string, values []any) *Builder {
	return b.addWhere(condition{conj: "AND", kind: condNotIn, column: col, args: values})
}

// WhereBetween appends a BETWEEN ? AND ? check with two bindings.
func (b *Builder) WhereBetween(col string, from any, to any) *Builder {
	return b.addWhere(condition{conj: "AND", kind: condBetween, column: col, args: []any{from, to}})
}

// WhereNotBetween appends a NOT BETWEEN check.
func (b *Builder) WhereNotBetween(col string, from any, to any) *Builder {
	return b.addWhere(condition{conj: "AND", kind: condNotBetween, column: col, args: []any{from, to}})
}

// OrWhereBetween appends a BETWEEN check joined with OR.
func (b *Builder) OrWhereBetween(col string, from any, to any) *Builder {
	return b.addWhere(condition{conj: "OR", kind: condBetween, column: col, args: []any{from, to}})
}

// WhereRaw appends a raw SQL fragment with its bindings.
// 原生片段不做任何引用处理，调用方自己保证安全
func (b *Builder) WhereRaw(expr string, args ...any) *Builder {
	return b.addWhere(condition{conj: "AND", kind: condRaw, raw: expr, args: args})
}

func (b *Builder) addWhere(c condition) *Builder {
	b.wheres = append(b.wheres, c)
	return b
}

// Having appends a bound comparison to the HAVING chain.
func (b *Builder) Having(col string, op string, value any) *Builder {
	b.havings = append(b.havings, condition{conj: "AND", kind: condBasic, column: col, op: op, args: []any{value}})
	return b
}

// OrHaving appends a HAVING comparison joined with OR.
func (b *Builder) OrHaving(col string, op string, value any) *Builder {
	b.havings = append(b.havings, condition{conj: "OR", kind: condBasic, column: col, op: op, args: []any{value}})
	return b
}
