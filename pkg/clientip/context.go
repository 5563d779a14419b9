package clientip

import (
	"context"
	"net/netip"
)

// clientIPContextKey is the key for storing the client address in context.
type clientIPContextKey struct{}

// SetIPToContext stores the client address in context.
func SetIPToContext(ctx context.Context, ip netip.Addr) context.Context {
	return context.WithValue(ctx, clientIPContextKey{}, ip)
}

// GetIPFromContext retrieves the client address from context. Returns the
// zero netip.Addr when the middleware did not run.
func GetIPFromContext(ctx context.Context) netip.Addr {
	ip, _ := ctx.Value(clientIPContextKey{}).(netip.Addr)
	return ip
}
