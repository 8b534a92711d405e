// Package http provides http transport for account lookups
package http

import (
	stdhttp "net/http"

	"riftcoach/internal/adapters/riot"
	"riftcoach/internal/modkit/httpkit"

	"github.com/go-chi/chi/v5"
)

// Register mounts account endpoints on the given router
func Register(r httpkit.Router, client *riot.Client) {
	h := &handlers{client: client}
	httpkit.Get(r, "/{name}/{tag}", h.lookup)
}

type handlers struct{ client *riot.Client }

type accountOut struct {
	Account riot.Account       `json:"account"`
	Ranked  []riot.LeagueEntry `json:"ranked"`
}

func (h *handlers) lookup(r *stdhttp.Request) (any, error) {
	name := chi.URLParam(r, "name")
	tag := chi.URLParam(r, "tag")

	acct, err := h.client.AccountByRiotID(r.Context(), name, tag)
	if err != nil {
		return nil, err
	}
	entries, err := h.client.LeagueEntriesByPUUID(r.Context(), acct.PUUID)
	if err != nil {
		return nil, err
	}
	return accountOut{Account: acct, Ranked: entries}, nil
}
