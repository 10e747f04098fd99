package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// interpolate 把绑定参数按出现顺序替换进 ? 占位符，只用于调试输出。
// 朴素替换对所有值类型都不是注入安全的，千万别执行结果
func interpolate(sqlText string, args []any) string {
	var sb strings.Builder
	sb.Grow(len(sqlText))
	idx := 0
	for i := 0; i < len(sqlText); i++ {
		if sqlText[i] == '?' && idx < len(args) {
			sb.WriteString(formatValue(args[idx]))
			idx++
			continue
		}
		sb.WriteByte(sqlText[i])
	}
	return sb.String()
}

// formatValue renders a binding as a SQL literal, escaping single quotes
// by doubling.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if val {
			return "1"
		}
		return "0"
	case string:
		return quoteString(val)
	case []byte:
		return quoteString(string(val))
	case time.Time:
		return quoteString(val.Format("2006-01-02 15:04:05"))
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
