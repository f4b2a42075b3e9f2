// Package middleware holds adapters and in house middlewares
package middleware

import (
	"net/http"
	"time"

	"termswap/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	Slow time.Duration  // requests at least this slow log at warn; 0 disables
	Log  *logger.Logger // overrides the request-scoped logger
}

// AccessLogZerolog logs one line per request with the route pattern,
// status, sizes and elapsed time. Place it after RequestContext so the
// request id rides along. 5xx log at error level
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			log := opt.Log
			if log == nil {
				log = logger.C(r.Context())
			}
			evt := log.Info()
			if status >= http.StatusInternalServerError {
				evt = log.Error()
			} else if opt.Slow > 0 && elapsed >= opt.Slow {
				evt = log.Warn().Bool("slow", true)
			}
			evt.Str("method", r.Method).
				Str("route", routeOf(r)).
				Int("status", status).
				Int64("bytes_in", max(r.ContentLength, 0)).
				Int("bytes_out", ww.BytesWritten()).
				Dur("elapsed", elapsed).
				Msg("request done")
		})
	}
}

// routeOf prefers the matched chi pattern so ids in paths don't explode
// log cardinality
func routeOf(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
