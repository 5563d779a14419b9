package linktoken

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"log/slog"
)

// Authority owns the single rotating token embedded into the per-session
// stylesheet URL. The token itself lives in the shared store so every
// instance of the hosting service sees the same value.
type Authority struct {
	store Store
	cfg   Config
	log   *slog.Logger
}

// NewAuthority creates a token authority on top of store.
func NewAuthority(store Store, cfg Config, opts ...Option) *Authority {
	o := newOptions(opts...)
	return &Authority{
		store: store,
		cfg:   cfg.withDefaults(),
		log:   o.log,
	}
}

// Token returns the active token. When no token exists or the previous one
// expired, a fresh 16-character value is generated and stored with the
// configured TTL. When the store is unreachable the fixed FallbackToken is
// returned instead, so page rendering never breaks on a store outage.
func (a *Authority) Token(ctx context.Context) string {
	if err := a.store.Live(ctx); err != nil {
		return FallbackToken
	}

	tok, found, err := a.store.Get(ctx, a.cfg.TokenKey)
	if err != nil {
		return FallbackToken
	}
	if found {
		return tok
	}

	tok, err = randomToken()
	if err != nil {
		return FallbackToken
	}

	// Conditional set: if another instance won the regeneration race, adopt
	// its token instead of overwriting it.
	created, err := a.store.SetNX(ctx, a.cfg.TokenKey, tok, a.cfg.TokenTTL)
	if err != nil {
		return FallbackToken
	}
	if !created {
		if winner, found, err := a.store.Get(ctx, a.cfg.TokenKey); err == nil && found {
			return winner
		}
		// The winner expired between SetNX and Get. Our value is as good
		// as any; a brief window of multiple accepted tokens is tolerated.
	}

	a.log.DebugContext(ctx, "generated new css token", slog.String("key", a.cfg.TokenKey))
	return tok
}

// Validate reports whether candidate equals the current token.
func (a *Authority) Validate(ctx context.Context, candidate string) bool {
	valid := subtle.ConstantTimeCompare([]byte(candidate), []byte(a.Token(ctx))) == 1
	a.log.DebugContext(ctx, "css token checked", slog.Bool("valid", valid))
	return valid
}

// randomToken draws tokenLength characters uniformly from lowercase letters
// and digits.
func randomToken() (string, error) {
	buf := make([]byte, tokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}
	return string(buf), nil
}
