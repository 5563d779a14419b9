package linktoken

import (
	"context"
	"time"
)

// Store defines the key-value backend the heuristic keeps its state in.
// All cross-request coordination is delegated to the store's single-key
// atomicity; no multi-key transactions are used.
//
// Implementations must distinguish "key absent" (found == false, nil error)
// from "store unreachable" (non-nil error): the two cases drive opposite
// branches of the suspicion check.
type Store interface {
	// Get returns the value at key. found is false for absent keys.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value at key with the given TTL, replacing any existing
	// value and TTL.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// SetNX stores value at key only if the key does not exist. Returns
	// true when the value was written.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)

	// TTL returns the remaining lifetime of key. Following the Redis
	// convention, absent keys report a negative duration.
	TTL(ctx context.Context, key string) (time.Duration, error)

	// Live reports whether the store is reachable. It must fail fast:
	// an unreachable store disables the heuristic, it must not stall
	// request handling.
	Live(ctx context.Context) error
}
