// Package api provides the HTTP API for the application
package api

import (
	"termswap/internal/platform/config"
	phttp "termswap/internal/platform/net/http"

	"termswap/internal/modkit"
	"termswap/internal/modkit/httpkit"
	"termswap/internal/modkit/module"

	apiconvert "termswap/internal/services/api/convert/module"
	metamod "termswap/internal/services/api/meta/module"
	convertmod "termswap/internal/services/convert/module"
)

// ServiceName is reported by the meta endpoints
const ServiceName = "termswap-api"

// Options are the API options
type Options struct {
	Config         config.Conf
	EnableProfiler bool
	Stack          httpkit.StackOptions
}

// Mount builds the convert module and mounts every API module onto r
func Mount(r phttp.Router, opt Options) error {
	deps := modkit.Deps{Cfg: opt.Config}

	// the convert module owns the dictionary; the API module only serves it
	convOpts := convertmod.FromConfig(deps.Cfg)
	conv, err := convertmod.New(deps, convOpts)
	if err != nil {
		return err
	}
	port := module.MustPortsOf[convertmod.Ports](conv).Converter

	mods := []modkit.Module{
		metamod.New(deps, ServiceName, func() int { return port.Terms().Loaded }),
		conv,
		apiconvert.New(deps,
			apiconvert.Options{MaxBatch: convOpts.MaxBatch},
			modkit.WithPorts(apiconvert.Ports{Converter: port}),
		),
	}

	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		modkit.MountAll(api, mods...)
	})
	return nil
}
