// Package net provides utilities for working with request contexts
package net

import (
	"context"

	"termswap/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest stores the request id where both chi and the logger can find it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	return logger.WithRequest(ctx, reqID)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// Propagate copies the chi request id into the logger context.
// Middleware that runs after chimw.RequestID calls this so logger.C picks it up
func Propagate(ctx context.Context) context.Context {
	return logger.WithRequest(ctx, RequestID(ctx))
}
