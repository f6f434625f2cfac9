package cricbuzz

import (
	"context"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

const (
	MatchStateRecent   = "recent"
	MatchStateLive     = "live"
	MatchStateUpcoming = "upcoming"
)

func ValidMatchState(state string) bool {
	switch state {
	case MatchStateRecent, MatchStateLive, MatchStateUpcoming:
		return true
	}
	return false
}

// Matches fetches the recent/live/upcoming match list.
func (c *Client) Matches(ctx context.Context, state string) (map[string]any, error) {
	if !ValidMatchState(state) {
		return nil, fmt.Errorf("invalid match state %q", state)
	}
	return c.Get(ctx, "/matches/v1/"+state, nil)
}

// Scorecard tries the known scorecard endpoint variants in order and returns
// the first payload that fetches and carries innings data. Credential
// failures abort immediately; anything else moves on to the next variant.
func (c *Client) Scorecard(ctx context.Context, matchID string) (map[string]any, error) {
	type variant struct {
		path   string
		params map[string]string
	}
	variants := []variant{
		{path: fmt.Sprintf("/mcenter/v1/%s/scard", matchID)},
		{path: "/mcenter/v1/scorecard", params: map[string]string{"matchId": matchID}},
		{path: "/matches/v1/scorecard", params: map[string]string{"matchId": matchID}},
	}

	var lastErr error
	for _, v := range variants {
		payload, err := c.Get(ctx, v.path, v.params)
		if err != nil {
			if crerr.IsAny(err, ErrMissingAPIKey, ErrForbidden) || ctx.Err() != nil {
				return nil, err
			}
			lastErr = err
			continue
		}
		if len(ExtractInnings(payload)) > 0 {
			return payload, nil
		}
		lastErr = crerr.Wrapf(ErrUnrecognizedShape, "scorecard %s via %s", matchID, v.path)
	}
	if lastErr == nil {
		lastErr = crerr.Wrapf(ErrUnrecognizedShape, "scorecard %s", matchID)
	}
	return nil, lastErr
}

// MatchInfo fetches the match-center detail payload.
func (c *Client) MatchInfo(ctx context.Context, matchID string) (map[string]any, error) {
	return c.Get(ctx, fmt.Sprintf("/mcenter/v1/%s", matchID), nil)
}

// Commentary fetches the ball-by-ball commentary payload.
func (c *Client) Commentary(ctx context.Context, matchID string) (map[string]any, error) {
	return c.Get(ctx, fmt.Sprintf("/mcenter/v1/%s/comm", matchID), nil)
}

// PlayerBatting fetches a player's batting summary grid, falling back to the
// legacy path when the modern one is unavailable.
func (c *Client) PlayerBatting(ctx context.Context, playerID string) (map[string]any, error) {
	return c.playerStats(ctx, playerID, "batting", "/players/get-batting")
}

// PlayerBowling is PlayerBatting for bowling figures.
func (c *Client) PlayerBowling(ctx context.Context, playerID string) (map[string]any, error) {
	return c.playerStats(ctx, playerID, "bowling", "/players/get-bowling")
}

func (c *Client) playerStats(ctx context.Context, playerID, kind, legacyPath string) (map[string]any, error) {
	payload, err := c.Get(ctx, fmt.Sprintf("/stats/v1/player/%s/%s", playerID, kind), nil)
	if err == nil {
		return payload, nil
	}
	if crerr.IsAny(err, ErrMissingAPIKey, ErrForbidden) || ctx.Err() != nil {
		return nil, err
	}
	return c.Get(ctx, legacyPath, map[string]string{"playerId": playerID})
}

// TrendingPlayers fetches the trending player list and extracts (id, name,
// country) triples from the known layouts.
func (c *Client) TrendingPlayers(ctx context.Context) ([]PlayerRef, error) {
	payload, err := c.Get(ctx, "/stats/v1/player/trending", nil)
	if err != nil {
		return nil, err
	}
	return ExtractPlayerRefs(payload), nil
}

// Rankings fetches an ICC ranking table for a category (batsmen, bowlers,
// allrounders) and format.
func (c *Client) Rankings(ctx context.Context, category, format string) (map[string]any, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	switch category {
	case "batsmen", "bowlers", "allrounders":
	default:
		return nil, fmt.Errorf("invalid rankings category %q", category)
	}
	params := map[string]string{}
	if format = strings.TrimSpace(format); format != "" {
		params["formatType"] = format
	}
	return c.Get(ctx, "/stats/v1/rankings/"+category, params)
}
