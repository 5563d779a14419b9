package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// GetIP returns the best-effort true client address for a request that may
// have crossed one or more reverse proxies. Resolution order:
//
//  1. X-Forwarded-For (first valid address in the list)
//  2. X-Real-IP (set by reverse proxies such as Nginx)
//  3. CF-Connecting-IP (Cloudflare)
//  4. RemoteAddr (direct connection fallback)
//
// Returns the zero netip.Addr when no valid address is found.
func GetIP(r *http.Request) netip.Addr {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// X-Forwarded-For can contain multiple addresses, the left-most is
		// the originating client.
		for ip := range strings.SplitSeq(forwarded, ",") {
			if addr, ok := parseAddr(ip); ok {
				return addr
			}
		}
	}

	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		if addr, ok := parseAddr(ip); ok {
			return addr
		}
	}

	if ip := r.Header.Get("CF-Connecting-IP"); ip != "" {
		if addr, ok := parseAddr(ip); ok {
			return addr
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr may already be a bare address.
		host = r.RemoteAddr
	}
	addr, _ := parseAddr(host)
	return addr
}

// parseAddr validates and normalizes an address string. IPv4-mapped IPv6
// addresses are unmapped so the same client always yields the same address.
func parseAddr(s string) (netip.Addr, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Addr{}, false
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}
