// Package domain holds ingest types shared by service, repo, and transports
package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlayerRef identifies one player to ingest
type PlayerRef struct {
	GameName string
	TagLine  string
	PlayerID uuid.UUID
}

// Handle renders the GameName#TagLine form used in logs and rosters
func (p PlayerRef) Handle() string { return p.GameName + "#" + p.TagLine }

// PlayerMatch is the flat per-player match record we persist
// every field is populated; absent source values become zero, false,
// or "UNKNOWN" for the positional strings
type PlayerMatch struct {
	MatchID      string
	PUUID        string
	ChampionID   int
	ChampionName string
	Role         string
	Lane         string
	TeamPosition string

	Kills   int
	Deaths  int
	Assists int

	// CreepScore is lane minions plus neutral monsters
	CreepScore int

	GoldEarned         int
	DamageToChampions  int
	VisionScore        int
	DamageToObjectives int
	DamageToTurrets    int

	FirstBloodKill      bool
	FirstTowerKill      bool
	LargestKillingSpree int
	WardsPlaced         int
	WardsKilled         int

	GameDurationSecs int64
	GameVersion      string
	PlayedAt         time.Time
	Win              bool
}

// Result aggregates one player's ingestion run
type Result struct {
	Requested int `json:"requested"`
	Stored    int `json:"stored"`
	Failed    int `json:"failed"`
}

// BulkOptions tunes a bulk run; zero values fall back to service config
type BulkOptions struct {
	BatchSize  int
	MatchCount int
}

// BulkResult aggregates a whole roster run
type BulkResult struct {
	Players   int   `json:"players"`
	Requested int   `json:"requested"`
	Stored    int   `json:"stored"`
	Failed    int   `json:"failed"`
	Total     int64 `json:"total"`
}
