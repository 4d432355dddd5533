// Package modkit provides module wiring and core deps for the probe API
package modkit

import (
	"net/http"

	"langshim/internal/core/engine"
	"langshim/internal/core/marshal"
	"langshim/internal/platform/config"
	"langshim/internal/platform/logger"
	phttp "langshim/internal/platform/net/http"
)

// Module is the common surface for API modules that mount routes
// keep this tiny so modules stay decoupled
type Module interface {
	MountRoutes(r phttp.Router)
	Name() string
	Prefix() string
}

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log    *logger.Logger
	Cfg    config.Conf
	Engine engine.Engine
	Alloc  marshal.Allocator
}

// Option mutates build configuration for a module
type Option func(*Built)

// Built is the resolved module configuration
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Register func(phttp.Router)
}

// WithName sets a module name used in logs
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix mounts a module under a path prefix
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares attaches per module middleware in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithRegister adds extra endpoints to the module router after its own
func WithRegister(fn func(phttp.Router)) Option { return func(b *Built) { b.Register = fn } }

// Build applies opts in order; later options win
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	if b.Register == nil {
		b.Register = func(phttp.Router) {}
	}
	return b
}

// Mount mounts every module under its Prefix. Modules sharing a prefix share
// one subrouter; each gets its own group so module middleware stays local
func Mount(r phttp.Router, mods ...Module) {
	var order []string
	byPrefix := map[string][]Module{}
	for _, m := range mods {
		p := m.Prefix()
		if p == "/" {
			p = ""
		}
		if _, seen := byPrefix[p]; !seen {
			order = append(order, p)
		}
		byPrefix[p] = append(byPrefix[p], m)
	}
	for _, p := range order {
		group := byPrefix[p]
		mountAll := func(sub phttp.Router) {
			for _, m := range group {
				sub.Group(m.MountRoutes)
			}
		}
		if p == "" {
			mountAll(r)
			continue
		}
		r.Route(p, mountAll)
	}
}
