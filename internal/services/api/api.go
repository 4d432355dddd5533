// Package api assembles the probe API from its modules
package api

import (
	"net/http"

	"langshim/internal/core/engine"
	"langshim/internal/core/marshal"
	"langshim/internal/modkit"
	"langshim/internal/modkit/httpkit"
	"langshim/internal/platform/config"
	perr "langshim/internal/platform/errors"
	"langshim/internal/platform/logger"
	pnet "langshim/internal/platform/net"
	phttp "langshim/internal/platform/net/http"

	detectmod "langshim/internal/services/detect/module"
	metamod "langshim/internal/services/meta/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Engine engine.Engine
	Logger *logger.Logger
	Alloc  marshal.Allocator // nil = heap capped by MAX_CHUNKS
}

// Mount installs the common stack and every module on r
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log:    opt.Logger,
		Cfg:    opt.Config,
		Engine: opt.Engine,
		Alloc:  opt.Alloc,
	}

	r.Use(httpkit.CommonStack(httpkit.StackFromConfig(opt.Config))...)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		phttp.RespondError(w, req, perr.NotFoundf("no route for %s %s", req.Method, req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		phttp.JSON(w, http.StatusMethodNotAllowed, phttp.Envelope{
			StatusCode: http.StatusMethodNotAllowed,
			Status:     http.StatusText(http.StatusMethodNotAllowed),
			Code:       perr.ErrorCodeInvalidArgument,
			Error:      "method " + req.Method + " not allowed on " + req.URL.Path,
			RequestID:  pnet.RequestID(req.Context()),
		})
	})

	modkit.Mount(r,
		detectmod.New(deps),
		metamod.New(deps),
	)
}
