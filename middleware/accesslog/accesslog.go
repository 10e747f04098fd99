package accesslog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/coderi421/fluentdb/query"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type MiddlewareBuilder struct {
	logFunc func(log string)
}

func NewBuilder() *MiddlewareBuilder {
	return &MiddlewareBuilder{}
}

// LogFunc 这里如果需要配置的参数比较多，可以使用 函数选项模式
func (m *MiddlewareBuilder) LogFunc(fn func(log string)) *MiddlewareBuilder {
	m.logFunc = fn
	return m
}

func (m *MiddlewareBuilder) Build() query.Middleware {
	logFunc := m.logFunc
	if logFunc == nil {
		// 默认走 zerolog 的结构化输出
		logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
		logFunc = func(log string) {
			logger.Info().RawJSON("query", []byte(log)).Msg("statement executed")
		}
	}

	return func(next query.Handler) query.Handler {
		return func(ctx context.Context, qc *query.QueryContext) *query.QueryResult {
			start := time.Now()
			var res *query.QueryResult

			// 要记录的语句
			defer func() {
				l := accessLog{
					ID:         uuid.NewString(),
					Type:       qc.Type,
					Table:      qc.Table,
					SQL:        qc.Query.SQL,
					Args:       lo.Map(qc.Query.Args, func(arg any, _ int) string { return fmt.Sprintf("%v", arg) }),
					DurationMs: time.Since(start).Milliseconds(),
				}
				if res != nil && res.Err != nil {
					l.Error = res.Err.Error()
				}

				data, _ := json.Marshal(l)

				logFunc(string(data))
			}()

			// 下一步要执行的逻辑
			res = next(ctx, qc)
			return res
		}
	}
}

type accessLog struct {
	ID         string   `json:"id,omitempty"` // 单次执行的关联 id
	Type       string   `json:"type,omitempty"`
	Table      string   `json:"table,omitempty"`
	SQL        string   `json:"sql,omitempty"`
	Args       []string `json:"args,omitempty"`
	DurationMs int64    `json:"duration_ms"`
	Error      string   `json:"error,omitempty"`
}
