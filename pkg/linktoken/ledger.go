package linktoken

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/netip"

	"github.com/dmitrymomot/botguard/pkg/logger"
)

// Ledger keeps one liveness record per (network, browser-session) pair.
// A non-expired record means "this fingerprint recently behaved like a real
// browser": it fetched the token-carrying stylesheet.
type Ledger struct {
	store Store
	cfg   Config
	log   *slog.Logger
}

// NewLedger creates a ping ledger on top of store.
func NewLedger(store Store, cfg Config, opts ...Option) *Ledger {
	o := newOptions(opts...)
	return &Ledger{
		store: store,
		cfg:   cfg.withDefaults(),
		log:   o.log,
	}
}

// Key derives the store key for a (network, browser-session) pair. The hash
// covers the compressed network string plus the Accept-Language and
// User-Agent header values, which fits, more or less, a browser session
// within a network: coarser than a single address, narrower than the network
// alone. The literal client address is deliberately left out.
func (l *Ledger) Key(network netip.Prefix, acceptLanguage, userAgent string) string {
	sum := sha256.Sum256([]byte(network.String() + acceptLanguage + userAgent))
	return l.cfg.PingKeyPrefix + "[" + hex.EncodeToString(sum[:]) + "]"
}

// RecordPing writes the presence marker for the given fingerprint with the
// configured TTL, resetting any existing TTL. No-op when the store is
// unreachable.
func (l *Ledger) RecordPing(ctx context.Context, network netip.Prefix, acceptLanguage, userAgent string) {
	key := l.Key(network, acceptLanguage, userAgent)
	if err := l.store.Set(ctx, key, pingMarker, l.cfg.PingTTL); err != nil {
		l.log.DebugContext(ctx, "ping not stored",
			logger.Network(network.String()), logger.Key(key), logger.Error(err))
		return
	}
	l.log.DebugContext(ctx, "stored ping",
		logger.Network(network.String()), logger.Key(key))
}

// HasPing reports whether a non-expired record exists for the fingerprint.
// With renew set, a hit slides the record's TTL back to the full window.
// An unreachable store yields false: no proof of a live browser.
func (l *Ledger) HasPing(ctx context.Context, network netip.Prefix, acceptLanguage, userAgent string, renew bool) bool {
	key := l.Key(network, acceptLanguage, userAgent)

	_, found, err := l.store.Get(ctx, key)
	if err != nil || !found {
		return false
	}

	if renew {
		if err := l.store.Set(ctx, key, pingMarker, l.cfg.PingTTL); err != nil {
			l.log.DebugContext(ctx, "ping not renewed",
				logger.Network(network.String()), logger.Key(key), logger.Error(err))
		}
	}

	l.log.DebugContext(ctx, "found ping",
		logger.Network(network.String()), logger.Key(key))
	return true
}
