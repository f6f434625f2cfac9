package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/cricstats/livestats/internal/domain/match"
	"github.com/cricstats/livestats/internal/domain/player"
)

const defaultListLimit = 50

// StatsService reads stored players and matches for the dashboard.
type StatsService struct {
	players player.Repository
	matches match.Repository
}

func NewStatsService(players player.Repository, matches match.Repository) *StatsService {
	return &StatsService{players: players, matches: matches}
}

func (s *StatsService) Players(ctx context.Context, limit int) ([]player.Player, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.players.List(ctx, limit)
}

// Matches lists stored matches, optionally filtered to one lifecycle bucket.
func (s *StatsService) Matches(ctx context.Context, status string, limit int) ([]match.Match, error) {
	switch status {
	case "", match.StatusUpcoming, match.StatusLive, match.StatusCompleted:
	default:
		return nil, crerr.Wrapf(ErrInvalidInput, "match status %q", status)
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.matches.List(ctx, status, limit)
}
