// Package clientip extracts the originating client's address from an
// *http.Request when the application is deployed behind one or more reverse
// proxies.
//
// The resolution algorithm examines proxy headers in descending priority
// until the first valid address is found:
//
//  1. X-Forwarded-For – comma-separated list, the left-most address is used
//  2. X-Real-IP       – set by reverse proxies such as Nginx
//  3. CF-Connecting-IP – Cloudflare
//  4. RemoteAddr      – TCP peer address as a fallback
//
// Addresses are returned as netip.Addr so callers can map them onto networks
// without re-parsing. GetIP never returns an error; an invalid or absent
// address yields the zero netip.Addr and callers decide how to proceed.
//
// Helper functions cover common scenarios:
//
//   - GetIP extracts the client address from an *http.Request.
//   - SetIPToContext and GetIPFromContext store/retrieve the resolved
//     address inside a context.Context.
//   - Middleware is a net/http compatible middleware that adds the address
//     to the request's context so downstream handlers can fetch it without
//     duplicating the resolution logic.
package clientip
