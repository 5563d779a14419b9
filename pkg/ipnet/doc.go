// Package ipnet resolves client addresses to the canonical network they
// belong to.
//
// Bot-detection signals in this module are keyed by network rather than by
// individual address: a ping recorded for one client in 203.0.113.0/24 covers
// every client of that network. The Resolver applies configurable prefix
// lengths per address family (default /32 for IPv4, /48 for IPv6).
//
// # Usage
//
//	var cfg ipnet.Config
//	config.MustLoad(&cfg)
//
//	resolver, err := ipnet.New(cfg)
//	if err != nil {
//		// invalid prefix configuration
//	}
//
//	network, err := resolver.Network(clientip.GetIP(r))
package ipnet
