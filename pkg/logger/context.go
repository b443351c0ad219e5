package logger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type callIDCtxKey struct{}

// NewCallID returns a fresh random call identifier.
func NewCallID() string {
	return uuid.NewString()
}

// WithCallID stores the call identifier in the context.
func WithCallID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, callIDCtxKey{}, id)
}

// CallIDFromContext returns the call identifier stored in ctx, if any.
func CallIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(callIDCtxKey{}).(string)
	return id, ok && id != ""
}

// EnsureCallID returns ctx unchanged when it already carries a call id,
// otherwise a derived context with a new one.
func EnsureCallID(ctx context.Context) (context.Context, string) {
	if id, ok := CallIDFromContext(ctx); ok {
		return ctx, id
	}
	id := NewCallID()
	return WithCallID(ctx, id), id
}

// CallIDExtractor injects the call id from context into every record.
func CallIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := CallIDFromContext(ctx); ok {
		return CallID(id), true
	}
	return slog.Attr{}, false
}
