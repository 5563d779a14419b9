// Package linktoken implements an anti-bot heuristic for web-facing search
// services: a client is rated suspicious if it never fetched the per-session
// stylesheet URL "/client<token>.css" whose token rotates through a shared
// key-value store. Most automated scripts request pages without rendering
// CSS; real browsers fetch the stylesheet and thereby "ping" the service.
//
// Three request paths cooperate:
//
//   - The render path embeds the current token into a stylesheet link via
//     Detector.StylesheetURL (the token comes from the Authority, which
//     lazily regenerates it on expiry, TTL 10 minutes).
//   - The probe path (Detector.Handler, mounted at GET|POST
//     /client{token}.css) validates the embedded token and records a ping
//     for the requester's (network, Accept-Language, User-Agent)
//     fingerprint, TTL one hour, renewable.
//   - The check path (Detector.IsSuspicious, or Detector.Middleware for
//     context-based consumption) rates a request suspicious when no ping
//     exists for its fingerprint.
//
// All state lives in the injected Store; the package holds nothing across
// requests, so any number of service instances can share one Redis backend
// (pkg/redis). MemoryStore serves tests and single-instance setups.
//
// Failure handling favors availability over signal strictness. No operation
// returns an error; each defines a safe fallback instead:
//
//   - Authority.Token falls back to the fixed, non-secret FallbackToken so
//     rendering never breaks.
//   - The probe endpoint always answers 200 with an empty CSS body, never
//     leaking whether a ping was recorded.
//   - IsSuspicious returns false when the store is unreachable (the whole
//     heuristic is disabled) but true when a reachable store holds no ping
//     (genuine negative evidence).
//
// # Usage
//
//	client, _ := redis.Connect(ctx, redisCfg)
//	detector, err := linktoken.New(redis.NewKV(client), linktoken.DefaultConfig(),
//		linktoken.WithLogger(log),
//	)
//	if err != nil {
//		// no store configured
//	}
//
//	router.Mount("/", detector.Routes())
//	router.Use(detector.Middleware(true))
//
//	// In the rate limiter:
//	if suspicious, ok := linktoken.SuspicionFromContext(r.Context()); ok && suspicious {
//		// challenge the client
//	}
package linktoken
