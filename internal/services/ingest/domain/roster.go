package domain

import (
	"strings"

	perr "riftcoach/internal/platform/errors"

	"github.com/google/uuid"
)

// ParseRosterEntry parses one "GameName#TagLine=player-uuid" roster entry
func ParseRosterEntry(s string) (PlayerRef, error) {
	handle, id, ok := strings.Cut(strings.TrimSpace(s), "=")
	if !ok {
		return PlayerRef{}, perr.InvalidArgf("roster entry %q missing =uuid", s)
	}
	name, tag, ok := strings.Cut(handle, "#")
	if !ok || strings.TrimSpace(name) == "" || strings.TrimSpace(tag) == "" {
		return PlayerRef{}, perr.InvalidArgf("roster entry %q is not GameName#TagLine=uuid", s)
	}
	pid, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return PlayerRef{}, perr.InvalidArgf("roster entry %q has a bad uuid", s)
	}
	return PlayerRef{
		GameName: strings.TrimSpace(name),
		TagLine:  strings.TrimSpace(tag),
		PlayerID: pid,
	}, nil
}

// ParseRoster parses a list of roster entries, skipping blanks
func ParseRoster(entries []string) ([]PlayerRef, error) {
	out := make([]PlayerRef, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e) == "" {
			continue
		}
		ref, err := ParseRosterEntry(e)
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, nil
}
