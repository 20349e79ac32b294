package logging

import (
	"context"
	"maps"

	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

type contextKey struct{}

// ContextWithFields stores request scoped fields (request id, slug, actor) on
// ctx, merged over any fields already present.
func ContextWithFields(ctx context.Context, fields map[string]any) context.Context {
	if ctx == nil || len(fields) == 0 {
		return ctx
	}
	merged := ContextFields(ctx)
	if merged == nil {
		merged = make(map[string]any, len(fields))
	}
	maps.Copy(merged, fields)
	return context.WithValue(ctx, contextKey{}, merged)
}

// ContextFields returns a copy of the fields stored on ctx.
func ContextFields(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	fields, ok := ctx.Value(contextKey{}).(map[string]any)
	if !ok || len(fields) == 0 {
		return nil
	}
	return maps.Clone(fields)
}

// FromContext decorates logger with the fields carried by ctx.
func FromContext(ctx context.Context, logger interfaces.Logger) interfaces.Logger {
	logger = Ensure(logger)
	if ctx == nil {
		return logger
	}
	return WithFields(logger.WithContext(ctx), ContextFields(ctx))
}
