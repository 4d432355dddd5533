// Package module mounts the detect service as an API module
package module

import (
	"langshim/internal/core/marshal"
	"langshim/internal/modkit"
	phttp "langshim/internal/platform/net/http"
	detecthttp "langshim/internal/services/detect/http"
	"langshim/internal/services/detect/service"
)

// Module is the detect API module
type Module struct {
	svc *service.Service
	b   modkit.Built
}

// New wires the detect service from deps. MAX_TEXT_BYTES and MAX_CHUNKS are
// read from deps.Cfg; a nil deps.Alloc becomes a heap allocator capped at
// MAX_CHUNKS elements per array
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	alloc := deps.Alloc
	if alloc == nil {
		alloc = marshal.HeapAllocator{Limit: deps.Cfg.MayInt("MAX_CHUNKS", 0)}
	}
	svc := service.New(deps.Engine, alloc, service.Options{
		MaxTextBytes: deps.Cfg.MayInt("MAX_TEXT_BYTES", service.DefaultMaxTextBytes),
	})
	b := modkit.Build(append([]modkit.Option{modkit.WithName("detect"), modkit.WithPrefix("/v1")}, opts...)...)
	if deps.Log != nil {
		deps.Log.Info().
			Str("module", b.Name).
			Str("engine", svc.EngineName()).
			Int("max_text_bytes", svc.MaxTextBytes()).
			Msg("module ready")
	}
	return &Module{svc: svc, b: b}
}

// Service exposes the underlying use case
func (m *Module) Service() *service.Service { return m.svc }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r phttp.Router) {
	if len(m.b.Mw) > 0 {
		r.Use(m.b.Mw...)
	}
	detecthttp.Register(r, m.svc, m.svc.MaxTextBytes())
	m.b.Register(r)
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.b.Name }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return m.b.Prefix }
