package linktoken

import "time"

// FallbackToken is returned by Authority.Token when the key-value store is
// unreachable. It is deliberately not secret: with no store there is nothing
// to validate a probe against, so the heuristic degrades to a no-op while
// page rendering keeps working.
const FallbackToken = "12345678"

const (
	tokenLength   = 16
	tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// pingMarker is the presence marker stored under ping keys. Only the
	// existence of the key carries meaning.
	pingMarker = "1"
)

// Config holds the link-token heuristic settings.
type Config struct {
	// TokenTTL is the lifetime of the rotating CSS token.
	TokenTTL time.Duration `env:"BOTGUARD_TOKEN_TTL" envDefault:"600s"`

	// PingTTL is the lifetime of a client ping record. Renewable.
	PingTTL time.Duration `env:"BOTGUARD_PING_TTL" envDefault:"3600s"`

	// TokenKey is the store key holding the current token.
	TokenKey string `env:"BOTGUARD_TOKEN_KEY" envDefault:"botguard_limiter.token"`

	// PingKeyPrefix prefixes every ping key. The full key is
	// PingKeyPrefix + "[" + derived hash + "]".
	PingKeyPrefix string `env:"BOTGUARD_PING_KEY_PREFIX" envDefault:"botguard_limiter.ping"`
}

// DefaultConfig returns the default heuristic settings.
func DefaultConfig() Config {
	return Config{
		TokenTTL:      10 * time.Minute,
		PingTTL:       time.Hour,
		TokenKey:      "botguard_limiter.token",
		PingKeyPrefix: "botguard_limiter.ping",
	}
}

// withDefaults fills zero-valued fields so a partially populated Config
// behaves like DefaultConfig for the missing parts.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.TokenTTL <= 0 {
		c.TokenTTL = def.TokenTTL
	}
	if c.PingTTL <= 0 {
		c.PingTTL = def.PingTTL
	}
	if c.TokenKey == "" {
		c.TokenKey = def.TokenKey
	}
	if c.PingKeyPrefix == "" {
		c.PingKeyPrefix = def.PingKeyPrefix
	}
	return c
}
