package opentelemetry

import (
	"context"

	"github.com/coderi421/fluentdb/query"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/coderi421/fluentdb/middleware/opentelemetry"

type MiddlewareBuilder struct {
	Tracer trace.Tracer
}

func (m *MiddlewareBuilder) Build() query.Middleware {
	if m.Tracer == nil {
		// 创建 tracer 实例
		m.Tracer = otel.GetTracerProvider().Tracer(instrumentationName)
	}
	return func(next query.Handler) query.Handler {
		return func(ctx context.Context, qc *query.QueryContext) *query.QueryResult {
			spanCtx, span := m.Tracer.Start(ctx, qc.Type)
			defer span.End()

			span.SetAttributes(attribute.String("db.operation", qc.Type))
			span.SetAttributes(attribute.String("db.sql.table", qc.Table))
			span.SetAttributes(attribute.String("db.statement", qc.Query.SQL))

			res := next(spanCtx, qc)
			if res.Err != nil {
				span.RecordError(res.Err)
			}
			return res
		}
	}
}
