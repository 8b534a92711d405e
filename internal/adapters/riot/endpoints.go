package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
)

// AccountByRiotID resolves a GameName#TagLine handle to an account
func (c *Client) AccountByRiotID(ctx context.Context, gameName, tagLine string) (Account, error) {
	path := fmt.Sprintf("/riot/account/v1/accounts/by-riot-id/%s/%s",
		url.PathEscape(gameName), url.PathEscape(tagLine))
	var out Account
	if err := c.getJSON(ctx, path, &out); err != nil {
		return Account{}, err
	}
	return out, nil
}

// MatchIDsByPUUID lists recent match ids for a puuid, newest first
// returns an empty slice when the player has no matches
func (c *Client) MatchIDsByPUUID(ctx context.Context, puuid string, start, count int) ([]string, error) {
	path := fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids?start=%d&count=%d",
		url.PathEscape(puuid), start, count)
	var out []string
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// MatchByID fetches the full match detail
func (c *Client) MatchByID(ctx context.Context, matchID string) (Match, error) {
	path := "/lol/match/v5/matches/" + url.PathEscape(matchID)
	var out Match
	if err := c.getJSON(ctx, path, &out); err != nil {
		return Match{}, err
	}
	return out, nil
}

// LeagueEntriesByPUUID fetches ranked queue standings for a puuid
func (c *Client) LeagueEntriesByPUUID(ctx context.Context, puuid string) ([]LeagueEntry, error) {
	path := "/lol/league/v4/entries/by-puuid/" + url.PathEscape(puuid)
	var out []LeagueEntry
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []LeagueEntry{}
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	resp, err := c.Do(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("riot close body failed")
		}
	}()

	lim := io.LimitReader(resp.Body, 4<<20)
	b, err := io.ReadAll(lim)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
