// Package ctxutil carries request scoped values through context.Context.
package ctxutil

import "context"

type key[T any] struct{}

func with[T any](ctx context.Context, v *T) context.Context {
	return context.WithValue(ctx, key[T]{}, v)
}

func get[T any](ctx context.Context) *T {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(key[T]{}).(*T)
	return v
}

// Identity is the caller resolved from a bearer token.
type Identity struct {
	UserID uint
	Email  string
}

func WithIdentity(ctx context.Context, id *Identity) context.Context { return with(ctx, id) }
func GetIdentity(ctx context.Context) *Identity                      { return get[Identity](ctx) }

// TraceData ties log lines to the request and its span.
type TraceData struct {
	TraceID   string
	RequestID string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context { return with(ctx, td) }
func GetTraceData(ctx context.Context) *TraceData                      { return get[TraceData](ctx) }
