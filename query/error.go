package query

import "github.com/coderi421/fluentdb/query/internal/errs"

// 将内部的 sentinel error 暴露出去，方便调用方 errors.Is 判断
var (
	// ErrNoTable 代表终结方法执行时还没有指定目标表
	ErrNoTable = errs.ErrNoTable

	// ErrNoWhere 代表 UPDATE/DELETE 缺少 WHERE 条件
	ErrNoWhere = errs.ErrNoWhere

	// ErrEmptyPayload 代表 INSERT/UPDATE 的数据为空
	ErrEmptyPayload = errs.ErrEmptyPayload
)
