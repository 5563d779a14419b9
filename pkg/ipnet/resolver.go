package ipnet

import (
	"fmt"
	"net/netip"
)

// Config controls how client addresses are collapsed into networks.
// The defaults treat every IPv4 address as its own network and group IPv6
// clients by their /48 allocation, matching common ISP assignment practice.
type Config struct {
	IPv4Prefix int `env:"BOTGUARD_IPV4_PREFIX" envDefault:"32"`
	IPv6Prefix int `env:"BOTGUARD_IPV6_PREFIX" envDefault:"48"`
}

// DefaultConfig returns the default prefix lengths.
func DefaultConfig() Config {
	return Config{IPv4Prefix: 32, IPv6Prefix: 48}
}

// Resolver maps client addresses onto the canonical network they belong to.
type Resolver struct {
	cfg Config
}

// New creates a Resolver. Prefix lengths outside the valid range for their
// address family are rejected.
func New(cfg Config) (*Resolver, error) {
	if cfg.IPv4Prefix < 0 || cfg.IPv4Prefix > 32 {
		return nil, fmt.Errorf("%w: ipv4 prefix %d", ErrInvalidPrefix, cfg.IPv4Prefix)
	}
	if cfg.IPv6Prefix < 0 || cfg.IPv6Prefix > 128 {
		return nil, fmt.Errorf("%w: ipv6 prefix %d", ErrInvalidPrefix, cfg.IPv6Prefix)
	}
	return &Resolver{cfg: cfg}, nil
}

// Network returns the masked network prefix for ip. The result is the unit
// the link-token heuristic keys pings by: one record covers all clients of
// the same network, not a single address.
func (r *Resolver) Network(ip netip.Addr) (netip.Prefix, error) {
	if !ip.IsValid() {
		return netip.Prefix{}, ErrInvalidAddr
	}

	ip = ip.Unmap()
	bits := r.cfg.IPv4Prefix
	if ip.Is6() {
		bits = r.cfg.IPv6Prefix
	}

	prefix, err := ip.Prefix(bits)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %s/%d", ErrInvalidPrefix, ip, bits)
	}
	return prefix, nil
}
