// Package repo provides postgres access for ingested player matches
package repo

import (
	"context"

	"riftcoach/internal/modkit/repokit"
	perr "riftcoach/internal/platform/errors"
	"riftcoach/internal/services/ingest/domain"

	"github.com/google/uuid"
)

// Repo defines the repository contract for player matches
type Repo interface {
	// Insert writes the record unless the riot match id already exists
	// stored is false when the row was a duplicate
	Insert(ctx context.Context, m domain.PlayerMatch, playerID uuid.UUID) (stored bool, err error)

	// Exists reports whether a riot match id is already persisted
	Exists(ctx context.Context, matchID string) (bool, error)

	// Count returns the total stored rows
	Count(ctx context.Context) (int64, error)

	// CountForPlayer returns stored rows for one player id
	CountForPlayer(ctx context.Context, playerID uuid.UUID) (int64, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Insert(ctx context.Context, m domain.PlayerMatch, playerID uuid.UUID) (bool, error) {
	const sql = `
insert into matches (
riot_match_id, player_id, puuid,
champion_id, champion_name, role, lane, team_position,
kills, deaths, assists, creep_score,
gold_earned, damage_to_champions, vision_score,
damage_to_objectives, damage_to_turrets,
first_blood_kill, first_turret_kill, largest_killing_spree,
wards_placed, wards_killed,
game_duration_secs, game_version, played_at, win
) values (
$1, $2, $3,
$4, $5, $6, $7, $8,
$9, $10, $11, $12,
$13, $14, $15,
$16, $17,
$18, $19, $20,
$21, $22,
$23, $24, $25, $26
)
on conflict (riot_match_id) do nothing
`
	tag, err := r.q.Exec(ctx, sql,
		m.MatchID, playerID, m.PUUID,
		m.ChampionID, m.ChampionName, m.Role, m.Lane, m.TeamPosition,
		m.Kills, m.Deaths, m.Assists, m.CreepScore,
		m.GoldEarned, m.DamageToChampions, m.VisionScore,
		m.DamageToObjectives, m.DamageToTurrets,
		m.FirstBloodKill, m.FirstTowerKill, m.LargestKillingSpree,
		m.WardsPlaced, m.WardsKilled,
		m.GameDurationSecs, m.GameVersion, m.PlayedAt, m.Win,
	)
	if err != nil {
		return false, perr.FromPostgres(err, "insert match failed")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *queries) Exists(ctx context.Context, matchID string) (bool, error) {
	const sql = `select exists(select 1 from matches where riot_match_id = $1)`
	var out bool
	if err := r.q.QueryRow(ctx, sql, matchID).Scan(&out); err != nil {
		return false, perr.FromPostgres(err, "exists check failed")
	}
	return out, nil
}

func (r *queries) Count(ctx context.Context) (int64, error) {
	const sql = `select count(*) from matches`
	var out int64
	if err := r.q.QueryRow(ctx, sql).Scan(&out); err != nil {
		return 0, perr.FromPostgres(err, "count failed")
	}
	return out, nil
}

func (r *queries) CountForPlayer(ctx context.Context, playerID uuid.UUID) (int64, error) {
	const sql = `select count(*) from matches where player_id = $1`
	var out int64
	if err := r.q.QueryRow(ctx, sql, playerID).Scan(&out); err != nil {
		return 0, perr.FromPostgres(err, "count for player failed")
	}
	return out, nil
}
