package linktoken

import (
	"context"
	"log/slog"
	"net/http"
	"net/netip"

	"github.com/dmitrymomot/botguard/pkg/clientip"
	"github.com/dmitrymomot/botguard/pkg/ipnet"
	"github.com/dmitrymomot/botguard/pkg/logger"
)

// Detector ties the token authority and the ping ledger together into the
// link-token heuristic: a client that never fetched the token-carrying
// stylesheet is rated suspicious.
type Detector struct {
	store     Store
	authority *Authority
	ledger    *Ledger
	resolver  NetworkResolver
	log       *slog.Logger
}

// New creates a Detector on top of store. Without WithResolver an ipnet
// resolver with default prefix lengths is used.
func New(store Store, cfg Config, opts ...Option) (*Detector, error) {
	if store == nil {
		return nil, ErrNoStore
	}

	o := newOptions(opts...)
	if o.resolver == nil {
		resolver, err := ipnet.New(ipnet.DefaultConfig())
		if err != nil {
			return nil, ErrNoResolver
		}
		o.resolver = resolver
	}

	cfg = cfg.withDefaults()
	return &Detector{
		store:     store,
		authority: NewAuthority(store, cfg, opts...),
		ledger:    NewLedger(store, cfg, opts...),
		resolver:  o.resolver,
		log:       o.log,
	}, nil
}

// Token returns the active token for embedding into the stylesheet URL of
// rendered pages. See Authority.Token for the fallback semantics.
func (d *Detector) Token(ctx context.Context) string {
	return d.authority.Token(ctx)
}

// Validate reports whether candidate equals the current token.
func (d *Detector) Validate(ctx context.Context, candidate string) bool {
	return d.authority.Validate(ctx, candidate)
}

// Ledger exposes the ping ledger for callers that manage their own network
// resolution.
func (d *Detector) Ledger() *Ledger {
	return d.ledger
}

// Probe handles a request to the token-carrying stylesheet URL. A ping is
// recorded only when the store is reachable, the embedded token is currently
// valid and the requester's network can be resolved; every failure is a
// silent no-op so the endpoint's response never leaks the outcome.
func (d *Detector) Probe(ctx context.Context, r *http.Request, token string) {
	if err := d.store.Live(ctx); err != nil {
		return
	}
	if !d.authority.Validate(ctx, token) {
		return
	}

	ip := clientip.GetIP(r)
	network, err := d.resolver.Network(ip)
	if err != nil {
		return
	}

	d.ledger.RecordPing(ctx, network, r.Header.Get("Accept-Language"), r.UserAgent())
}

// IsSuspicious checks whether a valid ping exists for the client network and
// the request's header fingerprint. The two short circuits are deliberate
// and asymmetric:
//
//   - store unreachable: false. The whole heuristic is disabled; its absence
//     must not rate every request suspicious.
//   - store reachable but no ping: true. Given a working store, a missing
//     ping is genuine negative evidence.
//
// With renew set, a found ping has its TTL reset to the full window.
func (d *Detector) IsSuspicious(ctx context.Context, network netip.Prefix, r *http.Request, renew bool) bool {
	if err := d.store.Live(ctx); err != nil {
		return false
	}

	if !d.ledger.HasPing(ctx, network, r.Header.Get("Accept-Language"), r.UserAgent(), renew) {
		d.log.WarnContext(ctx, "missing ping",
			logger.Network(network.String()),
			logger.Key(d.ledger.Key(network, r.Header.Get("Accept-Language"), r.UserAgent())))
		return true
	}

	return false
}
