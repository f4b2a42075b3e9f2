// Command termswap-api serves the check and fix endpoints over HTTP
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"termswap/internal/modkit/httpkit"
	"termswap/internal/platform/config"
	"termswap/internal/platform/logger"
	phttp "termswap/internal/platform/net/http"

	"termswap/internal/services/api"
)

func main() {
	// service-scoped config for HTTP (TERMSWAP_API_*); the dictionary
	// and worker settings live under TERMSWAP_*
	root := config.New()
	apiCfg := root.Prefix("TERMSWAP_API_")

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// http server (reads TERMSWAP_API_PORT)
	srv := phttp.NewServer(apiCfg)

	if err := api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			Stack:          httpkit.StackFromConfig(apiCfg),
		},
	); err != nil {
		l.Fatal().Err(err).Msg("api mount failed")
	}

	l.Info().Str("addr", srv.Addr()).Msg("termswap api starting")
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
