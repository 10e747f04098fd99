package query

import (
	"context"
)

// QueryContext 中间件的上下文。语句在进入中间件链之前已经编译完成，
// 所以这里直接冗余了编译结果，省得每个中间件都要自己再拼接一次 SQL
type QueryContext struct {
	// Type 声明语句类型。即 SELECT, UPDATE, DELETE 和 INSERT
	Type string

	// Table is the target table name as the caller passed it.
	Table string

	// Query is the compiled statement about to be executed.
	Query *Query
}

// QueryResult 中间件链的返回值
type QueryResult struct {
	// Result 在不同的语句里面，类型是不同的
	// SELECT 类语句里面，这会是 []Row
	// 其它情况下，它会是 sql.Result 类型
	Result any
	Err    error
}

type Middleware func(next Handler) Handler

type Handler func(ctx context.Context, qc *QueryContext) *QueryResult
