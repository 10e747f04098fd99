package query

// Join appends an INNER JOIN clause.
// left 和 right 都是列标识符，会被正常引用
func (b *Builder) Join(table string, left string, op string, right string) *Builder {
	return b.addJoin("INNER", table, left, op, right)
}

// LeftJoin appends a LEFT JOIN clause.
func (b *Builder) LeftJoin(table string, left string, op string, right string) *Builder {
	return b.addJoin("LEFT", table, left, op, right)
}

// RightJoin appends a RIGHT JOIN clause.
func (b *Builder) RightJoin(table string, left string, op string, right string) *Builder {
	return b.addJoin("RIGHT", table, left, op, right)
}

func (b *Builder) addJoin(kind string, table string, left string, op string, right string) *Builder {
	b.joins = append(b.joins, join{
		kind:  kind,
		table: table,
		left:  left,
		op:    op,
		right: right,
	})
	return b
}
