package redis

import "time"

// Config describes how to reach the Redis server backing the ping ledger
// and token authority.
type Config struct {
	// ConnectionURL in the form "redis://:password@localhost:6379/0".
	ConnectionURL string `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`

	// RetryAttempts is how many times Connect tries before giving up.
	RetryAttempts int `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`

	// RetryInterval is the pause between connection attempts.
	RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`

	// ConnectTimeout bounds the whole Connect call.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`

	// LivenessTimeout bounds the PING used to decide whether the store is
	// reachable. An unreachable store disables the bot-detection heuristic,
	// so the probe must fail fast rather than hang a request.
	LivenessTimeout time.Duration `env:"REDIS_LIVENESS_TIMEOUT" envDefault:"500ms"`
}
