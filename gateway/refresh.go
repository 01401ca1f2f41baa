package gateway

import "context"

type refreshContextKey struct{}

// WithRefresh marks the context so the next read bypasses the cache
// lookup and goes straight to the store. The fresh result still
// repopulates the cache, so a refresh doubles as a manual invalidation.
func WithRefresh(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, refreshContextKey{}, true)
}

func refreshRequested(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	v, ok := ctx.Value(refreshContextKey{}).(bool)
	return ok && v
}
