// Package normalize flattens raw match payloads into per-player records
package normalize

import (
	"time"

	"riftcoach/internal/adapters/riot"
	"riftcoach/internal/services/ingest/domain"
)

const unknownPosition = "UNKNOWN"

// PlayerMatch extracts the subject puuid's slice of a match
// ok is false when the subject is not among the participants
func PlayerMatch(m riot.Match, puuid string) (domain.PlayerMatch, bool) {
	var p *riot.Participant
	for i := range m.Info.Participants {
		if m.Info.Participants[i].PUUID == puuid {
			p = &m.Info.Participants[i]
			break
		}
	}
	if p == nil {
		return domain.PlayerMatch{}, false
	}

	return domain.PlayerMatch{
		MatchID:      m.Metadata.MatchID,
		PUUID:        puuid,
		ChampionID:   p.ChampionID,
		ChampionName: p.ChampionName,
		Role:         orUnknown(p.Role),
		Lane:         orUnknown(p.Lane),
		TeamPosition: orUnknown(p.TeamPosition),

		Kills:   p.Kills,
		Deaths:  p.Deaths,
		Assists: p.Assists,

		CreepScore: p.TotalMinionsKilled + p.NeutralMinionsKilled,

		GoldEarned:         p.GoldEarned,
		DamageToChampions:  p.TotalDamageDealtToChampions,
		VisionScore:        p.VisionScore,
		DamageToObjectives: p.DamageDealtToObjectives,
		DamageToTurrets:    p.DamageDealtToTurrets,

		FirstBloodKill:      p.FirstBloodKill,
		FirstTowerKill:      p.FirstTowerKill,
		LargestKillingSpree: p.LargestKillingSpree,
		WardsPlaced:         p.WardsPlaced,
		WardsKilled:         p.WardsKilled,

		GameDurationSecs: m.Info.GameDuration,
		GameVersion:      m.Info.GameVersion,
		PlayedAt:         time.UnixMilli(m.Info.GameStartTimestamp).UTC(),
		Win:              p.Win,
	}, true
}

func orUnknown(s string) string {
	if s == "" {
		return unknownPosition
	}
	return s
}
