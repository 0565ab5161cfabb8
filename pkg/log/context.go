package log

import (
	"context"

	"github.com/saranonuan/winston-log2gelf/pkg/funk"
)

type key int

const contextFieldsKey key = 0

// ContextFieldsResolverFunction extracts logger fields from a context.
type ContextFieldsResolverFunction func(ctx context.Context) map[string]any

// NewLoggerContext returns a new context carrying the given fields.
func NewLoggerContext(ctx context.Context, fields map[string]any) context.Context {
	return context.WithValue(ctx, contextFieldsKey, funk.MergeMaps(fields))
}

// AppendLoggerContextField appends the fields to the existing context fields, if there are no fields
// in the context then the value is initialized with the given fields.
// If there is a duplicate key then the newest value is the one that will be used.
func AppendLoggerContextField(ctx context.Context, fields map[string]any) context.Context {
	contextFields := fromLoggerContext(ctx)

	if len(contextFields) == 0 {
		return NewLoggerContext(ctx, fields)
	}

	return context.WithValue(ctx, contextFieldsKey, funk.MergeMaps(contextFields, fields))
}

// ContextLoggerFieldsResolver extracts the fields from a context and, if not present, returns an empty map.
func ContextLoggerFieldsResolver(ctx context.Context) map[string]any {
	return fromLoggerContext(ctx)
}

func fromLoggerContext(ctx context.Context) map[string]any {
	contextFields, ok := ctx.Value(contextFieldsKey).(map[string]any)
	if !ok {
		return map[string]any{}
	}

	return contextFields
}
