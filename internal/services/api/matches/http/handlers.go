// Package http provides http transport for stored match lookups
package http

import (
	stdhttp "net/http"

	"riftcoach/internal/modkit/httpkit"
	perr "riftcoach/internal/platform/errors"
	ingestrepo "riftcoach/internal/services/ingest/repo"

	"github.com/google/uuid"
)

// Register mounts match endpoints on the given router
func Register(r httpkit.Router, repo ingestrepo.Repo) {
	h := &handlers{repo: repo}
	httpkit.Get(r, "/count", h.count)
}

type handlers struct{ repo ingestrepo.Repo }

type countOut struct {
	Total     int64  `json:"total"`
	PlayerID  string `json:"player_id,omitempty"`
	ForPlayer *int64 `json:"for_player,omitempty"`
}

func (h *handlers) count(r *stdhttp.Request) (any, error) {
	total, err := h.repo.Count(r.Context())
	if err != nil {
		return nil, err
	}
	out := countOut{Total: total}

	if s := r.URL.Query().Get("player_id"); s != "" {
		pid, err := uuid.Parse(s)
		if err != nil {
			return nil, perr.InvalidArgf("player_id is not a uuid")
		}
		n, err := h.repo.CountForPlayer(r.Context(), pid)
		if err != nil {
			return nil, err
		}
		out.PlayerID = s
		out.ForPlayer = &n
	}
	return out, nil
}
