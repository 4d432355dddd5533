// Package module mounts the meta endpoints as an API module
package module

import (
	"time"

	"langshim/internal/modkit"
	phttp "langshim/internal/platform/net/http"
	metahttp "langshim/internal/services/meta/http"
)

// Module serves /version and /service
type Module struct {
	engine  string
	started time.Time
	b       modkit.Built
}

// New builds the meta module. The start time is captured here
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	m := &Module{started: time.Now(), b: modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/v1")}, opts...)...)}
	if deps.Engine != nil {
		m.engine = deps.Engine.Name()
	}
	return m
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r phttp.Router) {
	if len(m.b.Mw) > 0 {
		r.Use(m.b.Mw...)
	}
	metahttp.Register(r, "langshim-api", m.engine, m.started)
	m.b.Register(r)
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.b.Name }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return m.b.Prefix }
