package linktoken

import (
	"log/slog"
	"net/netip"
)

// NetworkResolver maps a client address onto the canonical network the
// heuristic keys pings by. pkg/ipnet provides the default implementation.
type NetworkResolver interface {
	Network(ip netip.Addr) (netip.Prefix, error)
}

type options struct {
	log      *slog.Logger
	resolver NetworkResolver
}

// Option configures the linktoken components.
type Option func(*options)

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithResolver sets the network resolver used by the probe handler and the
// suspicion middleware. Defaults to an ipnet resolver with default prefixes.
func WithResolver(resolver NetworkResolver) Option {
	return func(o *options) {
		if resolver != nil {
			o.resolver = resolver
		}
	}
}

func newOptions(opts ...Option) options {
	o := options{log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
