package modkit

import (
	"termswap/internal/modkit/module"
	phttp "termswap/internal/platform/net/http"
)

// Module is the common surface for modules that can mount routes and expose ports
type Module = module.Module

// Builder constructs a Module from shared deps and options
// modules typically expose New(deps Deps, opts ...Option) Module and may delegate to this pattern
type Builder func(Deps, ...Option) Module

// MountAll registers each module's ports under its name and mounts its routes on r
func MountAll(r phttp.Router, mods ...Module) {
	for _, m := range mods {
		module.Register(m.Name(), m.Ports())
		m.MountRoutes(r)
	}
}
