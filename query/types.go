package query

// Query 代表一条编译完成的语句：SQL 文本加上按 ? 出现顺序排列的参数
type Query struct {
	SQL  string
	Args []any
}

// Row is a single result row keyed by the column names the driver reports.
type Row map[string]any
