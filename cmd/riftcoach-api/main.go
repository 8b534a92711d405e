package main

import (
	"context"
	"os/signal"
	"syscall"

	"riftcoach/internal/modkit"
	"riftcoach/internal/modkit/repokit"
	"riftcoach/internal/platform/config"
	"riftcoach/internal/platform/logger"
	phttp "riftcoach/internal/platform/net/http"
	"riftcoach/internal/platform/store"

	"riftcoach/internal/services/api"
	ingestdom "riftcoach/internal/services/ingest/domain"
	ingestmod "riftcoach/internal/services/ingest/module"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	_ = godotenv.Load()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	// bring up logging early
	l := logger.Get()

	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "riftcoach",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(context.Background(), st)

	deps := modkit.Deps{
		Log: *l,
		Cfg: root,
		PG:  st.PG,
	}
	ingest := ingestmod.New(deps)

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config: apiCfg,
			Store:  st,
			Logger: l,
			Ingest: ingest,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// optional scheduled roster refresh
	if spec := apiCfg.MayString("REFRESH_CRON", ""); spec != "" {
		roster, err := ingestdom.ParseRoster(root.Prefix("CORE_INGEST_").MayCSV("ROSTER", nil))
		if err != nil {
			l.Panic().Err(err).Msg("bad CORE_INGEST_ROSTER")
		}
		if len(roster) == 0 {
			l.Panic().Msg("CORE_API_REFRESH_CRON set but CORE_INGEST_ROSTER is empty")
		}
		runner := ingest.Ports().(ingestmod.Ports).Runner

		cr := cron.New()
		if _, err := cr.AddFunc(spec, func() {
			res, err := runner.IngestBulk(ctx, roster, ingestdom.BulkOptions{})
			if err != nil {
				l.Error().Err(err).Msg("scheduled refresh failed")
				return
			}
			l.Info().
				Int("players", res.Players).
				Int("stored", res.Stored).
				Int64("total", res.Total).
				Msg("scheduled refresh done")
		}); err != nil {
			l.Panic().Err(err).Str("spec", spec).Msg("bad CORE_API_REFRESH_CRON")
		}
		cr.Start()
		defer cr.Stop()
		l.Info().Str("spec", spec).Int("players", len(roster)).Msg("roster refresh scheduled")
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	select {
	case err := <-errc:
		if err != nil {
			l.Panic().Err(err).Msg("http server stopped")
		}
	case <-ctx.Done():
		if err := srv.Shutdown(context.Background()); err != nil {
			l.Error().Err(err).Msg("shutdown failed")
		}
	}
}
