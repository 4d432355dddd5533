// Command langshim-api serves the detection probe over HTTP
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"langshim/internal/core/engine"
	"langshim/internal/platform/config"
	"langshim/internal/platform/logger"
	phttp "langshim/internal/platform/net/http"
	"langshim/internal/services/api"

	_ "langshim/internal/core/engine/cld2"
	_ "langshim/internal/core/engine/script"
)

func main() {
	// service-scoped config (LANGSHIM_API_*)
	root := config.New()
	apiCfg := root.Prefix("LANGSHIM_API_")

	l := logger.Named("api")

	eng, err := engine.Select(root.MayString("LANGSHIM_ENGINE", ""))
	if err != nil {
		l.Fatal().Err(err).Strs("available", engine.Names()).Msg("engine selection failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := phttp.NewServer(apiCfg)
	api.Mount(srv.Router(), api.Options{
		Config: apiCfg,
		Engine: eng,
		Logger: l,
	})

	l.Info().Str("engine", eng.Name()).Str("addr", srv.Addr()).Msg("starting")
	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
}
