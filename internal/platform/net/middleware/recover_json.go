package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"

	perr "termswap/internal/platform/errors"
	"termswap/internal/platform/logger"
	pnet "termswap/internal/platform/net"
)

// RecoverJSON turns a handler panic into the 500 error envelope.
// http.ErrAbortHandler is re-raised so net/http still drops the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")
			writePanic(w, pnet.RequestID(r.Context()))
		}()
		next.ServeHTTP(w, r)
	})
}

func writePanic(w http.ResponseWriter, reqID string) {
	status, body := pnet.Error(perr.PanicErrf("internal error"), reqID)
	h := w.Header()
	if reqID != "" {
		h.Set("X-Request-ID", reqID)
	}
	h.Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
