package clientip

import "net/http"

// Middleware resolves the client address once and stores it in the request
// context so downstream handlers do not repeat the header walk.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := SetIPToContext(r.Context(), GetIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
