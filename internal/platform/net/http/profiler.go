package http

import (
	stdhttp "net/http"

	"termswap/internal/platform/logger"
	pstrings "termswap/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler exposes net/http/pprof and expvar under prefix. It does
// nothing unless enabled
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	prefix = pstrings.MustPrefix(prefix)
	h := stdhttp.StripPrefix(prefix, chimw.Profiler())
	r.Handle(prefix, h)
	r.Handle(prefix+"/*", h)
	logger.Named("http").Warn().Str("prefix", prefix).Msg("profiler mounted")
}
