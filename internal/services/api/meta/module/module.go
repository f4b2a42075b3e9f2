// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "termswap/internal/modkit"
	"termswap/internal/modkit/httpkit"
	modreg "termswap/internal/modkit/module"

	metahttp "termswap/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	built     modkit.Built
	service   string
	terms     metahttp.TermsCounter
	startedAt time.Time
}

// New constructs a meta module. terms may be nil
func New(deps modkit.Deps, service string, terms metahttp.TermsCounter, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	return &Module{
		deps:      deps,
		built:     b,
		service:   service,
		terms:     terms,
		startedAt: time.Now(),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(sub httpkit.Router) {
		metahttp.Register(sub, metahttp.Deps{
			ServiceName: m.service,
			StartedAt:   m.startedAt,
			Terms:       m.terms,
			Modules:     modreg.Names,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.built.Name }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
