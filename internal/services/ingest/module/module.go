// Package module provides the ingest module implementation
package module

import (
	"riftcoach/internal/adapters/riot"
	"riftcoach/internal/modkit"
	"riftcoach/internal/modkit/repokit"
	phttp "riftcoach/internal/platform/net/http"
	"riftcoach/internal/services/ingest/domain"
	"riftcoach/internal/services/ingest/repo"
	"riftcoach/internal/services/ingest/service"
)

// Ports defines the ingest module ports
type Ports struct {
	Runner domain.RunnerPort
	Repo   repo.Repo
	Client *riot.Client
}

// Module implements the ingest module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the ingest module
// It wires the riot client, repo binder, and orchestrator from deps.Cfg
// It does not mount any routes
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	client := riot.NewClient(opts.Riot)
	binder := repo.NewPG()

	svc := service.New(
		repokit.TxRunner(deps.PG), binder, client,
		service.Config{
			Workers:        opts.Workers,
			MatchCount:     opts.MatchCount,
			BulkMatchCount: opts.BulkMatchCount,
			BatchSize:      opts.BatchSize,
			BatchPause:     opts.BatchPause,
		},
	)

	m := &Module{deps: deps}
	m.ports = Ports{Runner: svc, Repo: repokit.MustBind(binder, deps.PG), Client: client}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "ingest" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// MountRoutes is a no-op as ingest has no routes
func (m *Module) MountRoutes(_ phttp.Router) {}
