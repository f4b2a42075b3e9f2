// Package module wires the convert endpoints into the API using modkit
package module

import (
	"net/http"

	modkit "termswap/internal/modkit"
	"termswap/internal/modkit/httpkit"
	str "termswap/internal/platform/strings"

	chttp "termswap/internal/services/api/convert/http"
	cdom "termswap/internal/services/convert/domain"
)

// Ports declares the converter this API module serves
type Ports struct {
	Converter cdom.ConverterPort
}

// Options for the convert API module
type Options struct {
	MaxBatch int
	MaxBytes int64
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	ports Ports
	opts  Options
}

// New constructs the module; it panics without an injected Converter port
func New(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("api-convert"),
		modkit.WithPrefix("/convert"),
	}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok || p.Converter == nil {
		panic("convert API module: expected WithPorts(api/convert/module.Ports) with a Converter")
	}
	return &Module{deps: deps, built: b, ports: p, opts: o}
}

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(sub httpkit.Router) {
		chttp.Register(sub, chttp.Deps{
			Converter: m.ports.Converter,
			MaxBatch:  m.opts.MaxBatch,
			MaxBytes:  m.opts.MaxBytes,
		})
	})
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.built.Name }

// Prefix returns the normalized mount prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Middlewares returns the per module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
