// Package querycache caches SELECT results behind a pluggable Store.
// 只拦截 SELECT；INSERT/UPDATE/DELETE 原样放行，也不做任何失效处理，
// 过期策略完全交给 Store 自己
package querycache

import (
	"context"
	"errors"
	"fmt"

	"github.com/coderi421/fluentdb/query"
)

// ErrKeyNotFound is returned by a Store on cache miss.
var ErrKeyNotFound = errors.New("querycache: key not found")

// Store 缓存的存储抽象，参考 memory、lru 和 redis 三个实现
type Store interface {
	Get(ctx context.Context, key string) ([]query.Row, error)
	Set(ctx context.Context, key string, rows []query.Row) error
}

type MiddlewareBuilder struct {
	store Store
}

func NewBuilder(store Store) *MiddlewareBuilder {
	return &MiddlewareBuilder{store: store}
}

func (m *MiddlewareBuilder) Build() query.Middleware {
	return func(next query.Handler) query.Handler {
		return func(ctx context.Context, qc *query.QueryContext) *query.QueryResult {
			if qc.Type != "SELECT" {
				return next(ctx, qc)
			}

			key := cacheKey(qc.Query)
			if rows, err := m.store.Get(ctx, key); err == nil {
				return &query.QueryResult{Result: rows}
			}

			res := next(ctx, qc)
			if res.Err == nil {
				if rows, ok := res.Result.([]query.Row); ok {
					// 写缓存失败不影响本次查询结果
					_ = m.store.Set(ctx, key, rows)
				}
			}
			return res
		}
	}
}

// cacheKey 编译结果加参数就唯一决定了一次 SELECT
func cacheKey(q *query.Query) string {
	return fmt.Sprintf("%s|%v", q.SQL, q.Args)
}

// CloneRows 逐行复制结果集。进程内的 Store 直接把缓存值返回出去的话，
// 调用方改 Row 就会污染缓存，redis 那种经过序列化的实现天然没这个问题
func CloneRows(rows []query.Row) []query.Row {
	if rows == nil {
		return nil
	}
	out := make([]query.Row, len(rows))
	for i, row := range rows {
		cp := make(query.Row, len(row))
		for k, v := range row {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}
