package modkit

import (
	"net/http"
	"slices"

	"termswap/internal/modkit/httpkit"
)

// Router is the router modules mount against
type Router = httpkit.Router

// Built is the result of applying Options
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(Router) // extra routes, never nil after Build
}

// Build applies opts in order. Middleware slices are copied so callers
// may reuse theirs
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	b.Mw = slices.Clone(b.Mw)
	if b.Register == nil {
		b.Register = func(Router) {}
	}
	return b
}

// Mount attaches the module under b.Prefix with b.Mw: own routes first,
// then anything added with WithRegister
func (b Built) Mount(r Router, own func(Router)) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, func(sub Router) {
		if own != nil {
			own(sub)
		}
		b.Register(sub)
	})
}
