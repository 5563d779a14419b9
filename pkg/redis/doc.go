// Package redis provides the Redis-backed key-value store used by the
// botguard link-token heuristic.
//
// The package wraps the go-redis client and adds:
//
//   - Robust `Connect` which retries the connection using the supplied
//     configuration.
//   - A thin `KV` wrapper implementing the store contract the linktoken
//     package expects (Get/Set/SetNX/TTL plus a bounded liveness probe).
//   - A health-check helper to integrate Redis into HTTP liveness /
//     readiness probes.
//
// Configuration is described by the `Config` struct whose fields can be
// populated from environment variables via github.com/caarlos0/env.
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		// handle error, probably terminate the application
//	}
//	defer client.Close()
//
//	store := redis.NewKVWithConfig(client, cfg)
//	detector := linktoken.New(store, linktoken.DefaultConfig())
//
// # Errors
//
// The package defines sentinel errors (e.g. ErrRedisNotReady) that wrap the
// underlying go-redis errors using errors.Join, so callers can compare with
// errors.Is and still unwrap the cause.
package redis
