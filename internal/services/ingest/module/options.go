package module

import (
	"time"

	"riftcoach/internal/adapters/riot"
	"riftcoach/internal/platform/config"
)

// Options holds configuration options for the ingest service
type Options struct {
	Workers        int
	MatchCount     int
	BulkMatchCount int
	BatchSize      int
	BatchPause     time.Duration

	Riot riot.Options
}

// FromConfig reads the ingest options from config
// the riot api key is required and panics when missing
func FromConfig(cfg config.Conf) Options {
	ing := cfg.Prefix("CORE_INGEST_")
	rc := cfg.Prefix("RIOT_")
	return Options{
		Workers:        ing.MayInt("WORKERS", 8),
		MatchCount:     ing.MayInt("MATCH_COUNT", 50),
		BulkMatchCount: ing.MayInt("BULK_MATCH_COUNT", 100),
		BatchSize:      ing.MayInt("BATCH_SIZE", 5),
		BatchPause:     ing.MayDuration("BATCH_PAUSE", 2*time.Second),
		Riot: riot.Options{
			APIKey:       rc.MustString("API_KEY"),
			BaseURL:      rc.MayString("BASE_URL", ""),
			Timeout:      rc.MayDuration("TIMEOUT", 10*time.Second),
			MinInterval:  rc.MayDuration("MIN_INTERVAL", 1200*time.Millisecond),
			RateCooldown: rc.MayDuration("COOLDOWN", 5*time.Second),
			MaxRetries:   rc.MayInt("MAX_RETRIES", 5),
			RetryBase:    rc.MayDuration("RETRY_BASE", 500*time.Millisecond),
		},
	}
}
