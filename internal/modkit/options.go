package modkit

import "net/http"

// Option sets one field of a Built
type Option func(*Built)

// WithName names the module in logs and in the port registry
func WithName(name string) Option {
	return func(b *Built) { b.Name = name }
}

// WithPrefix mounts the module's routes under prefix
func WithPrefix(prefix string) Option {
	return func(b *Built) { b.Prefix = prefix }
}

// WithMiddlewares appends middleware that wraps only this module's routes
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands a module the ports it consumes. The importing module
// owns the concrete type and asserts it
func WithPorts[T any](p T) Option {
	return func(b *Built) { b.Ports = p }
}

// WithRegister adds routes after the module's own
func WithRegister(fn func(Router)) Option {
	return func(b *Built) { b.Register = fn }
}
