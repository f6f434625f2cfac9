package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/cricstats/livestats/external/cricbuzz"
)

// LiveService proxies live provider data straight to the dashboard without
// touching the store.
type LiveService struct {
	api CricketAPI
}

func NewLiveService(api CricketAPI) *LiveService {
	return &LiveService{api: api}
}

func (s *LiveService) MatchesByState(ctx context.Context, state string) (map[string]any, error) {
	if !cricbuzz.ValidMatchState(state) {
		return nil, crerr.Wrapf(ErrInvalidInput, "match state %q", state)
	}
	if !s.api.Enabled() {
		return nil, ErrDependencyUnavailable
	}
	return s.api.Matches(ctx, state)
}

func (s *LiveService) MatchInfo(ctx context.Context, matchID string) (map[string]any, error) {
	if matchID == "" {
		return nil, crerr.Wrap(ErrInvalidInput, "match id is required")
	}
	if !s.api.Enabled() {
		return nil, ErrDependencyUnavailable
	}
	return s.api.MatchInfo(ctx, matchID)
}

func (s *LiveService) Scorecard(ctx context.Context, matchID string) (map[string]any, error) {
	if matchID == "" {
		return nil, crerr.Wrap(ErrInvalidInput, "match id is required")
	}
	if !s.api.Enabled() {
		return nil, ErrDependencyUnavailable
	}
	return s.api.Scorecard(ctx, matchID)
}

// Rankings proxies an ICC ranking table. Category must be one of batsmen,
// bowlers or allrounders; format is passed through when present.
func (s *LiveService) Rankings(ctx context.Context, category, format string) (map[string]any, error) {
	switch category {
	case "batsmen", "bowlers", "allrounders":
	default:
		return nil, crerr.Wrapf(ErrInvalidInput, "rankings category %q", category)
	}
	if !s.api.Enabled() {
		return nil, ErrDependencyUnavailable
	}
	return s.api.Rankings(ctx, category, format)
}

func (s *LiveService) Commentary(ctx context.Context, matchID string) (map[string]any, error) {
	if matchID == "" {
		return nil, crerr.Wrap(ErrInvalidInput, "match id is required")
	}
	if !s.api.Enabled() {
		return nil, ErrDependencyUnavailable
	}
	return s.api.Commentary(ctx, matchID)
}
