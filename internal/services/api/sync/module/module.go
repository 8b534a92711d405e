// Package module wires sync into the API using modkit
package module

import (
	"net/http"

	"riftcoach/internal/modkit"
	"riftcoach/internal/modkit/httpkit"
	str "riftcoach/internal/platform/strings"
	synchttp "riftcoach/internal/services/api/sync/http"
	ingestdom "riftcoach/internal/services/ingest/domain"
)

// Ports declares the cross module dependencies sync consumes
type Ports struct {
	Runner ingestdom.RunnerPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs a sync module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("sync"), modkit.WithPrefix("/sync")}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Runner == nil {
		panic("sync module requires a Runner port")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		ports:     ports,
		subrouter: b.Subrouter,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		synchttp.Register(r, m.ports.Runner)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
