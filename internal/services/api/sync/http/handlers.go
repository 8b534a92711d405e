// Package http provides http transport for sync
package http

import (
	stdhttp "net/http"
	"strings"

	"riftcoach/internal/modkit/httpkit"
	perr "riftcoach/internal/platform/errors"
	"riftcoach/internal/services/api/sync/domain"
	ingestdom "riftcoach/internal/services/ingest/domain"

	"github.com/google/uuid"
)

// Register mounts sync endpoints on the given router
func Register(r httpkit.Router, runner ingestdom.RunnerPort) {
	h := &handlers{runner: runner}
	httpkit.PostJSON[domain.PlayerInput](r, "/player", h.player)
	httpkit.PostJSON[domain.BulkInput](r, "/bulk", h.bulk)
}

type handlers struct{ runner ingestdom.RunnerPort }

func (h *handlers) player(r *stdhttp.Request, in domain.PlayerInput) (any, error) {
	pid, err := uuid.Parse(in.PlayerID)
	if err != nil {
		return nil, perr.InvalidArgf("player_id is not a uuid")
	}
	return h.runner.IngestPlayer(r.Context(), ingestdom.PlayerRef{
		GameName: in.GameName,
		TagLine:  in.TagLine,
		PlayerID: pid,
	}, in.Count)
}

func (h *handlers) bulk(r *stdhttp.Request, in domain.BulkInput) (any, error) {
	players := make([]ingestdom.PlayerRef, 0, len(in.Players))
	for _, p := range in.Players {
		pid, err := uuid.Parse(p.PlayerID)
		if err != nil {
			return nil, perr.InvalidArgf("player_id is not a uuid for %s", p.Handle)
		}
		name, tag, _ := strings.Cut(p.Handle, "#")
		players = append(players, ingestdom.PlayerRef{
			GameName: name,
			TagLine:  tag,
			PlayerID: pid,
		})
	}
	return h.runner.IngestBulk(r.Context(), players, ingestdom.BulkOptions{
		BatchSize:  in.BatchSize,
		MatchCount: in.Count,
	})
}
