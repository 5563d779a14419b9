package linktoken

import (
	"net/http"

	"github.com/dmitrymomot/botguard/pkg/clientip"
	"github.com/dmitrymomot/botguard/pkg/logger"
)

// Middleware runs the suspicion check once per request and stores the
// verdict in the request context for downstream consumers such as rate
// limiters. With renew set, found pings have their TTL reset, keeping
// active browser sessions alive.
//
// Requests whose network cannot be resolved are not rated: a missing verdict
// in context means the heuristic did not apply.
func (d *Detector) Middleware(renew bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip := clientip.GetIP(r)
			network, err := d.resolver.Network(ip)
			if err != nil {
				d.log.DebugContext(ctx, "suspicion check skipped",
					logger.ClientIP(ip.String()), logger.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			ctx = SetSuspicionToContext(ctx, d.IsSuspicious(ctx, network, r, renew))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
