package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// KV is a thin key-value wrapper over a Redis client. It satisfies the
// linktoken.Store interface and keeps redis.Nil handling in one place:
// a missing key is ordinary negative data, not an error.
type KV struct {
	db              redis.UniversalClient
	livenessTimeout time.Duration
}

// NewKV wraps client with the default liveness timeout of 500ms.
func NewKV(client redis.UniversalClient) *KV {
	return &KV{db: client, livenessTimeout: 500 * time.Millisecond}
}

// NewKVWithConfig wraps client using the liveness timeout from cfg.
func NewKVWithConfig(client redis.UniversalClient, cfg Config) *KV {
	timeout := cfg.LivenessTimeout
	if timeout <= 0 {
		timeout = 500 * time.Millisecond
	}
	return &KV{db: client, livenessTimeout: timeout}
}

// Get returns the value at key. found is false for absent keys.
func (kv *KV) Get(ctx context.Context, key string) (value string, found bool, err error) {
	val, err := kv.db.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores value at key with the given TTL. Zero TTL means no expiration.
func (kv *KV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return kv.db.Set(ctx, key, value, ttl).Err()
}

// SetNX stores value at key only if the key does not exist yet. Returns true
// when the value was written.
func (kv *KV) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return kv.db.SetNX(ctx, key, value, ttl).Result()
}

// TTL returns the remaining time to live of key. Absent keys report a
// negative duration, matching the Redis TTL command.
func (kv *KV) TTL(ctx context.Context, key string) (time.Duration, error) {
	return kv.db.TTL(ctx, key).Result()
}

// Live reports whether the store is reachable. The probe is bounded by the
// configured liveness timeout so callers can treat a slow store the same as
// an absent one.
func (kv *KV) Live(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, kv.livenessTimeout)
	defer cancel()
	return kv.db.Ping(ctx).Err()
}
