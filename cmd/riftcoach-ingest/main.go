package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"riftcoach/internal/modkit"
	"riftcoach/internal/modkit/repokit"
	"riftcoach/internal/platform/config"
	"riftcoach/internal/platform/logger"
	"riftcoach/internal/platform/store"

	ingestdom "riftcoach/internal/services/ingest/domain"
	ingestmod "riftcoach/internal/services/ingest/module"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	var (
		fPlayer   = flag.String("player", "", "single player handle GameName#TagLine")
		fPlayerID = flag.String("player-id", "", "player uuid for -player (random when omitted)")
		fCount    = flag.Int("count", 0, "matches per player (0 uses configured defaults)")
		fRoster   = flag.String("roster", "", "path to a roster file of GameName#TagLine=uuid lines")
		fBatch    = flag.Int("batch", 0, "bulk batch size (0 uses configured default)")
	)
	flag.Parse()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	if (*fPlayer == "") == (*fRoster == "") {
		l.Panic().Msg("provide exactly one of -player or -roster")
	}

	st, err := store.Open(context.Background(), store.Config{
		AppName: "riftcoach",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", true),
		},
	}, store.WithLogger(*l))
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
	runner := ingestmod.New(deps).Ports().(ingestmod.Ports).Runner

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *fPlayer != "" {
		ref, err := singleRef(*fPlayer, *fPlayerID)
		if err != nil {
			l.Panic().Err(err).Msg("bad -player / -player-id")
		}
		res, err := runner.IngestPlayer(ctx, ref, *fCount)
		if err != nil {
			l.Panic().Err(err).Str("player", ref.Handle()).Msg("ingest failed")
		}
		l.Info().
			Str("player", ref.Handle()).
			Int("requested", res.Requested).
			Int("stored", res.Stored).
			Int("failed", res.Failed).
			Msg("ingest done")
		return
	}

	roster, err := readRoster(*fRoster)
	if err != nil {
		l.Panic().Err(err).Str("path", *fRoster).Msg("bad roster file")
	}
	res, err := runner.IngestBulk(ctx, roster, ingestdom.BulkOptions{
		BatchSize:  *fBatch,
		MatchCount: *fCount,
	})
	if err != nil {
		l.Panic().Err(err).Msg("bulk ingest failed")
	}
	l.Info().
		Int("players", res.Players).
		Int("requested", res.Requested).
		Int("stored", res.Stored).
		Int("failed", res.Failed).
		Int64("total", res.Total).
		Msg("bulk ingest done")
}

func singleRef(handle, id string) (ingestdom.PlayerRef, error) {
	if id == "" {
		id = uuid.NewString()
	}
	return ingestdom.ParseRosterEntry(handle + "=" + id)
}

// readRoster reads GameName#TagLine=uuid lines, skipping blanks and # comments
func readRoster(path string) ([]ingestdom.PlayerRef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var entries []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ingestdom.ParseRoster(entries)
}
