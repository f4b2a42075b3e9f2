package httpkit

import (
	"net/http"
	"time"

	"termswap/internal/platform/config"
	"termswap/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout     time.Duration
	SlowRequest time.Duration
	MaxInFlight int // 0 disables throttling
	CORSOrigins []string
}

// StackFromConfig reads TIMEOUT, SLOW_REQUEST, MAX_INFLIGHT and CORS_ORIGINS from cfg
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		Timeout:     cfg.MayDuration("TIMEOUT", 30*time.Second),
		SlowRequest: cfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		MaxInFlight: cfg.MayInt("MAX_INFLIGHT", 0),
		CORSOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
	}
}

// CommonStack returns the baseline middleware slice for the versioned API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	stack := middleware.Defaults(o.Timeout)
	return append(stack,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Throttle(o.MaxInFlight),
	)
}
