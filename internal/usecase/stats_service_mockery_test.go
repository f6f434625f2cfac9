package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/cricstats/livestats/internal/domain/match"
	"github.com/cricstats/livestats/internal/domain/player"
	matchmock "github.com/cricstats/livestats/internal/mocks/domain/match"
	playermock "github.com/cricstats/livestats/internal/mocks/domain/player"
)

func TestStatsService_Players_DefaultLimitUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)

	service := NewStatsService(playerRepo, matchRepo)
	expected := []player.Player{
		{ID: 1, Name: "Virat Kohli", Country: "India", Role: player.RoleBatter},
		{ID: 2, Name: "Rashid Khan", Country: "Afghanistan", Role: player.RoleAllRounder},
	}

	playerRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), 50).
		Return(expected, nil).
		Once()

	got, err := service.Players(ctx, 0)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("unexpected player count: got=%d want=%d", len(got), len(expected))
	}
	if got[0].Name != expected[0].Name {
		t.Fatalf("unexpected player: got=%s want=%s", got[0].Name, expected[0].Name)
	}
}

func TestStatsService_Matches_StatusFilterUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)

	service := NewStatsService(playerRepo, matchRepo)
	expected := []match.Match{
		{MatchID: "5001", Team1: "India", Team2: "Australia", Status: match.StatusCompleted},
	}

	matchRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), match.StatusCompleted, 10).
		Return(expected, nil).
		Once()

	got, err := service.Matches(ctx, match.StatusCompleted, 10)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(got) != 1 || got[0].MatchID != "5001" {
		t.Fatalf("unexpected matches: %+v", got)
	}
}

func TestStatsService_Matches_InvalidStatusUsingMockery(t *testing.T) {
	t.Parallel()

	service := NewStatsService(playermock.NewRepository(t), matchmock.NewRepository(t))

	_, err := service.Matches(context.Background(), "ancient", 10)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
