package usecase

import (
	"context"

	"github.com/cricstats/livestats/external/cricbuzz"
)

// CricketAPI is the slice of the provider client the services consume.
// *cricbuzz.Client satisfies it; tests substitute stubs.
type CricketAPI interface {
	Enabled() bool
	Matches(ctx context.Context, state string) (map[string]any, error)
	Scorecard(ctx context.Context, matchID string) (map[string]any, error)
	MatchInfo(ctx context.Context, matchID string) (map[string]any, error)
	Commentary(ctx context.Context, matchID string) (map[string]any, error)
	PlayerBatting(ctx context.Context, playerID string) (map[string]any, error)
	PlayerBowling(ctx context.Context, playerID string) (map[string]any, error)
	TrendingPlayers(ctx context.Context) ([]cricbuzz.PlayerRef, error)
	Rankings(ctx context.Context, category, format string) (map[string]any, error)
}
