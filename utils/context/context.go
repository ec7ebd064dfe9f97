package context

import (
	"context"

	"github.com/retailmax/inventario/constant"
)

// WithRequestID stores a correlation id in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constant.RequestIDKey, requestID)
}

// GetRequestID returns the correlation id embedded by the request-id middleware.
func GetRequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.RequestIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
