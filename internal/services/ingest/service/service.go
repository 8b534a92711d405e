// Package service contains the ingestion orchestrator and bulk scheduler
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"riftcoach/internal/modkit/repokit"
	perr "riftcoach/internal/platform/errors"
	"riftcoach/internal/platform/logger"
	"riftcoach/internal/services/ingest/domain"
	"riftcoach/internal/services/ingest/normalize"
	"riftcoach/internal/services/ingest/repo"
)

// Service defines the service contract for ingestion
type Service interface{ domain.RunnerPort }

// Config holds orchestration tuning
type Config struct {
	// Workers bounds concurrent per-match units; <=0 -> 8
	Workers int

	// MatchCount is the single-player default; <=0 -> 50
	MatchCount int

	// BulkMatchCount is the per-player default for bulk runs; <=0 -> 100
	BulkMatchCount int

	// BatchSize partitions bulk rosters; <=0 -> 5
	BatchSize int

	// BatchPause separates consecutive batches; <=0 -> 2s
	BatchPause time.Duration
}

// Svc implements the Service interface
type Svc struct {
	DB     repokit.TxRunner
	Repo   repo.Repo
	Source domain.Source
	Cfg    Config

	// sleep seam so tests can observe batch pacing
	sleep func(context.Context, time.Duration) error
}

// New creates a new ingestion service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], src domain.Source, cfg Config) *Svc {
	if db == nil {
		panic("ingest.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("ingest.Service requires a non nil Repo binder")
	}
	if src == nil {
		panic("ingest.Service requires a non nil Source")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 8
	}
	if cfg.MatchCount <= 0 {
		cfg.MatchCount = 50
	}
	if cfg.BulkMatchCount <= 0 {
		cfg.BulkMatchCount = 100
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 5
	}
	if cfg.BatchPause <= 0 {
		cfg.BatchPause = 2 * time.Second
	}
	return &Svc{
		DB:     db,
		Repo:   repokit.MustBind(binder, db),
		Source: src,
		Cfg:    cfg,
		sleep:  sleepCtx,
	}
}

// IngestPlayer implements domain.RunnerPort
// per-unit failures are counted, never fatal; a handle that resolves to
// nothing yields a zero Result and no error
func (s *Svc) IngestPlayer(ctx context.Context, ref domain.PlayerRef, count int) (domain.Result, error) {
	log := logger.C(ctx)
	if count <= 0 {
		count = s.Cfg.MatchCount
	}

	acct, err := s.Source.AccountByRiotID(ctx, ref.GameName, ref.TagLine)
	if err != nil {
		if perr.IsNotFound(err) {
			log.Warn().Str("player", ref.Handle()).Msg("ingest: account not found")
			return domain.Result{}, nil
		}
		return domain.Result{}, err
	}

	ids, err := s.Source.MatchIDsByPUUID(ctx, acct.PUUID, 0, count)
	if err != nil {
		log.Error().Str("player", ref.Handle()).Err(err).Msg("ingest: match id listing failed")
		return domain.Result{}, nil
	}
	if len(ids) == 0 {
		log.Info().Str("player", ref.Handle()).Msg("ingest: no matches")
		return domain.Result{}, nil
	}

	var stored, dupes, missing, absent, failed int64

	w := s.Cfg.Workers
	sem := make(chan struct{}, w)
	var wg sync.WaitGroup

	for _, id := range ids {
		select {
		case <-ctx.Done():
			wg.Wait()
			return domain.Result{
				Requested: len(ids),
				Stored:    int(atomic.LoadInt64(&stored)),
				Failed:    int(atomic.LoadInt64(&failed)),
			}, ctx.Err()
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(matchID string) {
			defer func() { <-sem; wg.Done() }()
			switch s.ingestOne(ctx, matchID, acct.PUUID, ref) {
			case unitStored:
				atomic.AddInt64(&stored, 1)
			case unitDuplicate:
				atomic.AddInt64(&dupes, 1)
			case unitNotFound:
				atomic.AddInt64(&missing, 1)
			case unitSubjectAbsent:
				atomic.AddInt64(&absent, 1)
			case unitFailed:
				atomic.AddInt64(&failed, 1)
			}
		}(id)
	}
	wg.Wait()

	log.Info().
		Str("player", ref.Handle()).
		Int("requested", len(ids)).
		Int64("stored", stored).
		Int64("duplicate", dupes).
		Int64("not_found", missing).
		Int64("subject_absent", absent).
		Int64("failed", failed).
		Msg("ingest: player run done")

	return domain.Result{
		Requested: len(ids),
		Stored:    int(stored),
		Failed:    int(failed),
	}, nil
}

type unitOutcome int

const (
	unitStored unitOutcome = iota
	unitDuplicate
	unitNotFound
	unitSubjectAbsent
	unitFailed
)

// ingestOne runs one fetch -> normalize -> store unit
func (s *Svc) ingestOne(ctx context.Context, matchID, puuid string, ref domain.PlayerRef) unitOutcome {
	log := logger.C(ctx)

	m, err := s.Source.MatchByID(ctx, matchID)
	if err != nil {
		if perr.IsNotFound(err) {
			log.Debug().Str("match", matchID).Msg("ingest: match gone upstream")
			return unitNotFound
		}
		log.Error().Str("match", matchID).Err(err).Msg("ingest: match fetch failed")
		return unitFailed
	}

	pm, ok := normalize.PlayerMatch(m, puuid)
	if !ok {
		log.Warn().Str("match", matchID).Str("puuid", puuid).Msg("ingest: subject missing from participants")
		return unitSubjectAbsent
	}

	stored, err := s.Repo.Insert(ctx, pm, ref.PlayerID)
	if err != nil {
		log.Error().Str("match", matchID).Err(err).Msg("ingest: insert failed")
		return unitFailed
	}
	if !stored {
		return unitDuplicate
	}
	return unitStored
}

// IngestBulk implements domain.RunnerPort
// batches run strictly in sequence with a pause between them
func (s *Svc) IngestBulk(ctx context.Context, players []domain.PlayerRef, opts domain.BulkOptions) (domain.BulkResult, error) {
	log := logger.C(ctx)

	batch := opts.BatchSize
	if batch <= 0 {
		batch = s.Cfg.BatchSize
	}
	count := opts.MatchCount
	if count <= 0 {
		count = s.Cfg.BulkMatchCount
	}

	out := domain.BulkResult{Players: len(players)}
	var requested, stored, failed int64

	for start := 0; start < len(players); start += batch {
		end := min(start+batch, len(players))

		var wg sync.WaitGroup
		for _, ref := range players[start:end] {
			wg.Add(1)
			go func(ref domain.PlayerRef) {
				defer wg.Done()
				res, err := s.IngestPlayer(ctx, ref, count)
				if err != nil {
					log.Error().Str("player", ref.Handle()).Err(err).Msg("ingest: bulk player failed")
				}
				atomic.AddInt64(&requested, int64(res.Requested))
				atomic.AddInt64(&stored, int64(res.Stored))
				atomic.AddInt64(&failed, int64(res.Failed))
			}(ref)
		}
		wg.Wait()

		if err := ctx.Err(); err != nil {
			out.Requested, out.Stored, out.Failed = int(requested), int(stored), int(failed)
			return out, err
		}
		if end < len(players) {
			if err := s.sleep(ctx, s.Cfg.BatchPause); err != nil {
				out.Requested, out.Stored, out.Failed = int(requested), int(stored), int(failed)
				return out, err
			}
		}
	}

	out.Requested, out.Stored, out.Failed = int(requested), int(stored), int(failed)

	total, err := s.Repo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ingest: post-run count failed")
	} else {
		out.Total = total
	}

	log.Info().
		Int("players", out.Players).
		Int("requested", out.Requested).
		Int("stored", out.Stored).
		Int("failed", out.Failed).
		Int64("total", out.Total).
		Msg("ingest: bulk run done")

	return out, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
