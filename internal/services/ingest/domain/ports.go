package domain

import (
	"context"

	"riftcoach/internal/adapters/riot"
)

// RunnerPort is what other modules and binaries call to run ingestion
type RunnerPort interface {
	// IngestPlayer resolves one handle and ingests up to count matches
	// count <= 0 uses the configured default
	IngestPlayer(ctx context.Context, ref PlayerRef, count int) (Result, error)

	// IngestBulk runs the roster in paced batches
	IngestBulk(ctx context.Context, players []PlayerRef, opts BulkOptions) (BulkResult, error)
}

// Source is the slice of the upstream client the orchestrator consumes
type Source interface {
	AccountByRiotID(ctx context.Context, gameName, tagLine string) (riot.Account, error)
	MatchIDsByPUUID(ctx context.Context, puuid string, start, count int) ([]string, error)
	MatchByID(ctx context.Context, matchID string) (riot.Match, error)
}
