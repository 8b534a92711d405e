// Package module wires account lookups into the API using modkit
package module

import (
	"net/http"

	"riftcoach/internal/adapters/riot"
	"riftcoach/internal/modkit"
	"riftcoach/internal/modkit/httpkit"
	str "riftcoach/internal/platform/strings"
	accounthttp "riftcoach/internal/services/api/account/http"
)

// Ports declares the cross module dependencies account consumes
type Ports struct {
	Client *riot.Client
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports

	register func(httpkit.Router)
}

// New constructs an account module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("account"), modkit.WithPrefix("/account")}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Client == nil {
		panic("account module requires a riot client port")
	}

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ports:  ports,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		accounthttp.Register(r, m.ports.Client)
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
