// Package module implements the convert module: it loads the dictionary,
// compiles the index and exposes the converter port
package module

import (
	"termswap/internal/core/matcher"
	"termswap/internal/core/termpack"
	"termswap/internal/modkit"
	"termswap/internal/modkit/httpkit"
	"termswap/internal/services/convert/domain"
	"termswap/internal/services/convert/service"
)

// Ports exposed by the convert module
type Ports struct {
	Converter domain.ConverterPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	name  string
	opts  Options
	ports Ports
}

// New loads the dictionary selected by o and builds the converter.
// Loader and index errors are returned unchanged
func New(deps modkit.Deps, o Options, opts ...modkit.Option) (*Module, error) {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("convert"),
	}, opts...)...)
	log := deps.Logger(b.Name)

	if len(o.Sources) == 0 {
		o.Sources = termpack.DefaultSources
	}
	terms, err := termpack.Load(o.Dictionary())
	if err != nil {
		return nil, err
	}
	idx, err := matcher.BuildIndex(terms)
	if err != nil {
		return nil, err
	}

	info := domain.TermsInfo{Custom: o.CustomDict}
	if !o.NoBuiltin {
		info.Sources = o.Sources
		if info.Sets, err = termpack.Stats(o.Sources...); err != nil {
			return nil, err
		}
	}

	svc := service.New(idx, info, o.Service())
	log.Debug().
		Int("terms", idx.Len()).
		Int("protected", idx.IdentityCount()).
		Strs("sources", info.Sources).
		Str("custom", o.CustomDict).
		Msg("dictionary loaded")

	return &Module{
		deps:  deps,
		name:  b.Name,
		opts:  o,
		ports: Ports{Converter: svc},
	}, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Converter returns the converter port
func (m *Module) Converter() domain.ConverterPort { return m.ports.Converter }

// Options returns the effective options
func (m *Module) Options() Options { return m.opts }

// MountRoutes satisfies modkit.Module; the HTTP surface lives in api/convert
func (m *Module) MountRoutes(_ httpkit.Router) {}
