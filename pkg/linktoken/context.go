package linktoken

import "context"

// suspicionContextKey is the key for storing the suspicion verdict in context.
type suspicionContextKey struct{}

// SetSuspicionToContext stores a suspicion verdict in context.
func SetSuspicionToContext(ctx context.Context, suspicious bool) context.Context {
	return context.WithValue(ctx, suspicionContextKey{}, suspicious)
}

// SuspicionFromContext retrieves the suspicion verdict stored by Middleware.
// ok is false when the middleware did not run for this request.
func SuspicionFromContext(ctx context.Context) (suspicious, ok bool) {
	suspicious, ok = ctx.Value(suspicionContextKey{}).(bool)
	return suspicious, ok
}
