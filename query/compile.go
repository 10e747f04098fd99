package query

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coderi421/fluentdb/query/internal/errs"
)

// compiler 每次编译都新建一个，保证 ToSQL 之类的编译入口不会改动 Builder 的状态
type compiler struct {
	sb     strings.Builder
	args   []any
	quoter byte
}

func newCompiler(d Dialect) *compiler {
	return &compiler{quoter: d.quoter()}
}

func (c *compiler) addArgs(args ...any) {
	if c.args == nil {
		c.args = make([]any, 0, 8)
	}
	c.args = append(c.args, args...)
}

// quote writes a single identifier segment, doubling any embedded quote
// character so it cannot break out of the quoted region.
func (c *compiler) quote(name string) {
	c.sb.WriteByte(c.quoter)
	for i := 0; i < len(name); i++ {
		if name[i] == c.quoter {
			c.sb.WriteByte(c.quoter)
		}
		c.sb.WriteByte(name[i])
	}
	c.sb.WriteByte(c.quoter)
}

// buildColumn quotes an identifier per dot-separated segment, supporting
// the table.column form. A bare * is passed through.
func (c *compiler) buildColumn(name string) {
	if name == "*" {
		c.sb.WriteByte('*')
		return
	}
	segs := strings.Split(name, ".")
	for i, seg := range segs {
		if i > 0 {
			c.sb.WriteByte('.')
		}
		if seg == "*" {
			c.sb.WriteByte('*')
			continue
		}
		c.quote(seg)
	}
}

// buildConditions compiles a boolean chain. The first fragment's
// connector is implicit; every later fragment is prefixed with its own
// AND/OR keyword. Bindings are appended in textual order.
func (c *compiler) buildConditions(conds []condition) {
	for i, cond := range conds {
		if i > 0 {
			c.sb.WriteByte(' ')
			c.sb.WriteString(cond.conj)
			c.sb.WriteByte(' ')
		}
		switch cond.kind {
		case condBasic:
			c.buildColumn(cond.column)
			c.sb.WriteByte(' ')
			c.sb.WriteString(cond.op)
			c.sb.WriteString(" ?")
			c.addArgs(cond.args...)
		case condNull:
			c.buildColumn(cond.column)
			c.sb.WriteString(" IS NULL")
		case condNotNull:
			c.buildColumn(cond.column)
			c.sb.WriteString(" IS NOT NULL")
		case condIn:
			if len(cond.args) == 0 {
				// IN () 非法，空集合编译成恒假条件
				c.sb.WriteString("1 = 0")
				continue
			}
			c.buildColumn(cond.column)
			c.sb.WriteString(" IN ")
			c.buildPlaceholders(len(cond.args))
			c.addArgs(cond.args...)
		case condNotIn:
			if len(cond.args) == 0 {
				c.sb.WriteString("1 = 1")
				continue
			}
			c.buildColumn(cond.column)
			c.sb.WriteString(" NOT IN ")
			c.buildPlaceholders(len(cond.args))
			c.addArgs(cond.args...)
		case condBetween:
			c.buildColumn(cond.column)
			c.sb.WriteString(" BETWEEN ? AND ?")
			c.addArgs(cond.args...)
		case condNotBetween:
			c.buildColumn(cond.column)
			c.sb.WriteString(" NOT BETWEEN ? AND ?")
			c.addArgs(cond.args...)
		case condRaw:
			c.sb.WriteString(cond.raw)
			if len(cond.args) != 0 {
				c.addArgs(cond.args...)
			}
		}
	}
}

func (c *compiler) buildPlaceholders(n int) {
	c.sb.WriteByte('(')
	for i := 0; i < n; i++ {
		if i > 0 {
			c.sb.WriteByte(',')
		}
		c.sb.WriteByte('?')
	}
	c.sb.WriteByte(')')
}

// buildSelect compiles the accumulated state into a SELECT statement.
// 子句顺序固定：SELECT → FROM → JOIN → WHERE → GROUP BY → HAVING →
// ORDER BY → LIMIT → OFFSET，参数顺序和 ? 的文本顺序严格一致
func (b *Builder) buildSelect() (*Query, error) {
	if b.table == "" {
		return nil, errs.ErrNoTable
	}

	c := newCompiler(b.db.dialect)
	c.sb.WriteString("SELECT ")
	if len(b.columns) == 0 {
		c.sb.WriteByte('*')
	} else {
		for i, col := range b.columns {
			if i > 0 {
				c.sb.WriteString(", ")
			}
			if col.raw {
				c.sb.WriteString(col.name)
			} else {
				c.buildColumn(col.name)
			}
		}
	}

	c.sb.WriteString(" FROM ")
	c.buildColumn(b.table)

	for _, j := range b.joins {
		c.sb.WriteByte(' ')
		c.sb.WriteString(j.kind)
		c.sb.WriteString(" JOIN ")
		c.buildColumn(j.table)
		c.sb.WriteString(" ON ")
		c.buildColumn(j.left)
		c.sb.WriteByte(' ')
		c.sb.WriteString(j.op)
		c.sb.WriteByte(' ')
		c.buildColumn(j.right)
	}

	if len(b.wheres) > 0 {
		c.sb.WriteString(" WHERE ")
		c.buildConditions(b.wheres)
	}

	if len(b.groupBys) > 0 {
		c.sb.WriteString(" GROUP BY ")
		for i, col := range b.groupBys {
			if i > 0 {
				c.sb.WriteString(", ")
			}
			c.buildColumn(col)
		}
	}

	if len(b.havings) > 0 {
		c.sb.WriteString(" HAVING ")
		c.buildConditions(b.havings)
	}

	if len(b.orders) > 0 {
		c.sb.WriteString(" ORDER BY ")
		for i, o := range b.orders {
			if i > 0 {
				c.sb.WriteString(", ")
			}
			c.buildColumn(o.column)
			c.sb.WriteByte(' ')
			c.sb.WriteString(o.direction)
		}
	}

	if b.limit >= 0 {
		c.sb.WriteString(" LIMIT ")
		c.sb.WriteString(strconv.Itoa(b.limit))
	}

	if b.offset >= 0 {
		c.sb.WriteString(" OFFSET ")
		c.sb.WriteString(strconv.Itoa(b.offset))
	}

	return &Query{
		SQL:  c.sb.String(),
		Args: c.args,
	}, nil
}

// buildInsert compiles an INSERT statement. Columns appear in sorted key
// order so the output is deterministic; bindings follow the same order.
func (b *Builder) buildInsert(data map[string]any) (*Query, error) {
	if b.table == "" {
		return nil, errs.ErrNoTable
	}
	if len(data) == 0 {
		return nil, errs.ErrEmptyPayload
	}

	keys := sortedKeys(data)

	c := newCompiler(b.db.dialect)
	c.sb.WriteString("INSERT INTO ")
	c.buildColumn(b.table)
	c.sb.WriteString(" (")
	c.args = make([]any, 0, len(keys))
	for i, k := range keys {
		if i > 0 {
			c.sb.WriteByte(',')
		}
		c.buildColumn(k)
		c.addArgs(data[k])
	}
	c.sb.WriteString(") VALUES ")
	c.buildPlaceholders(len(keys))

	return &Query{
		SQL:  c.sb.String(),
		Args: c.args,
	}, nil
}

// buildUpdate compiles an UPDATE statement. Data bindings precede the
// WHERE bindings, matching placeholder order.
func (b *Builder) buildUpdate(data map[string]any) (*Query, error) {
	if b.table == "" {
		return nil, errs.ErrNoTable
	}
	if len(data) == 0 {
		return nil, errs.ErrEmptyPayload
	}
	if len(b.wheres) == 0 {
		return nil, errs.ErrNoWhere
	}

	keys := sortedKeys(data)

	c := newCompiler(b.db.dialect)
	c.sb.WriteString("UPDATE ")
	c.buildColumn(b.table)
	c.sb.WriteString(" SET ")
	for i, k := range keys {
		if i > 0 {
			c.sb.WriteString(", ")
		}
		c.buildColumn(k)
		c.sb.WriteString(" = ?")
		c.addArgs(data[k])
	}

	c.sb.WriteString(" WHERE ")
	c.buildConditions(b.wheres)

	return &Query{
		SQL:  c.sb.String(),
		Args: c.args,
	}, nil
}

// buildDelete compiles a DELETE statement.
func (b *Builder) buildDelete() (*Query, error) {
	if b.table == "" {
		return nil, errs.ErrNoTable
	}
	if len(b.wheres) == 0 {
		return nil, errs.ErrNoWhere
	}

	c := newCompiler(b.db.dialect)
	c.sb.WriteString("DELETE FROM ")
	c.buildColumn(b.table)
	c.sb.WriteString(" WHERE ")
	c.buildConditions(b.wheres)

	return &Query{
		SQL:  c.sb.String(),
		Args: c.args,
	}, nil
}

// sortedKeys Go 的 map 遍历顺序是随机的，排一下序让编译结果可复现
func sortedKeys(data map[string]any) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
