// Package middleware adapts chi and go-chi/cors middleware to plain
// net/http signatures so callers never import chi directly
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	pstrings "termswap/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the shape every function here returns
type Middleware = func(http.Handler) http.Handler

func passThrough(next http.Handler) http.Handler { return next }

// RequestID propagates X-Request-ID or mints one
func RequestID() Middleware { return chimw.RequestID }

// RealIP rewrites RemoteAddr from X-Forwarded-For and X-Real-IP
func RealIP() Middleware { return chimw.RealIP }

// Timeout cancels the request context after d. Conversion runs check the
// context between documents, so a long batch stops early
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

func NoCache() Middleware { return chimw.NoCache }

// Compress gzips responses for clients that ask. Converted text
// compresses well, so the API uses flate.BestSpeed
func Compress(level int) Middleware { return chimw.NewCompressor(level).Handler }

// Throttle caps in-flight requests and answers 429 beyond it. limit <= 0 disables it
func Throttle(limit int) Middleware {
	if limit <= 0 {
		return passThrough
	}
	return chimw.Throttle(limit)
}

// CORSOptions picks the parts of go-chi/cors the API exposes. Empty
// fields fall back to corsDefaults
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

var corsDefaults = CORSOptions{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	ExposedHeaders: []string{"X-Request-ID"},
}

func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   pstrings.IfEmpty(o.AllowedOrigins, corsDefaults.AllowedOrigins),
		AllowedMethods:   pstrings.IfEmpty(o.AllowedMethods, corsDefaults.AllowedMethods),
		AllowedHeaders:   pstrings.IfEmpty(o.AllowedHeaders, corsDefaults.AllowedHeaders),
		ExposedHeaders:   pstrings.IfEmpty(o.ExposedHeaders, corsDefaults.ExposedHeaders),
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}

// Defaults is the head of the API chain. Ids come first so the request
// logger and the panic envelope can both see them
func Defaults(timeout time.Duration) []Middleware {
	return []Middleware{
		RealIP(),
		RequestID(),
		RequestContext,
		RecoverJSON,
		Timeout(timeout),
		Compress(flate.BestSpeed),
		NoCache(),
	}
}
