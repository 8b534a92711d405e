// Package api provides the HTTP API for the application
package api

import (
	"riftcoach/internal/platform/config"
	"riftcoach/internal/platform/logger"
	phttp "riftcoach/internal/platform/net/http"
	"riftcoach/internal/platform/net/middleware"
	"riftcoach/internal/platform/store"

	"riftcoach/internal/modkit"
	"riftcoach/internal/modkit/httpkit"

	accountmod "riftcoach/internal/services/api/account/module"
	matchesmod "riftcoach/internal/services/api/matches/module"
	syncmod "riftcoach/internal/services/api/sync/module"
	ingestmod "riftcoach/internal/services/ingest/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger

	// Ingest is the pre-built ingest module; the API modules borrow its
	// ports so the process keeps one riot client and one admission gate
	Ingest *ingestmod.Module
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// liveness outside the versioned surface
	r.Use(middleware.Heartbeat("/healthz"))

	if opt.Ingest == nil {
		panic("api.Mount requires a built ingest module")
	}
	ports := opt.Ingest.Ports().(ingestmod.Ports)

	mods := []modkit.Module{
		syncmod.New(deps, modkit.WithPorts(syncmod.Ports{Runner: ports.Runner})),
		matchesmod.New(deps, modkit.WithPorts(matchesmod.Ports{Repo: ports.Repo})),
		accountmod.New(deps, modkit.WithPorts(accountmod.Ports{Client: ports.Client})),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
}
