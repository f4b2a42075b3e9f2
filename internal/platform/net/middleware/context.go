package middleware

import (
	"net/http"

	pnet "termswap/internal/platform/net"
)

// RequestContext copies the chi request id into the logger context and
// echoes it back as X-Request-ID. Mount after RequestID
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := pnet.Propagate(r.Context())
		if id := pnet.RequestID(ctx); id != "" {
			w.Header().Set("X-Request-ID", id)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
