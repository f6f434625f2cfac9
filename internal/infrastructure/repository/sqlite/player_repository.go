package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/cricstats/livestats/internal/domain/player"
	"github.com/cricstats/livestats/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

var _ player.Repository = (*PlayerRepository)(nil)

func (r *PlayerRepository) Upsert(ctx context.Context, p player.Player) error {
	row := map[string]any{
		"name":            p.Name,
		"country":         p.Country,
		"role":            p.Role,
		"batting_style":   p.BattingStyle,
		"bowling_style":   p.BowlingStyle,
		"total_runs":      p.TotalRuns,
		"batting_average": p.BattingAverage,
		"strike_rate":     p.StrikeRate,
		"total_wickets":   p.TotalWickets,
		"bowling_average": p.BowlingAverage,
		"economy_rate":    p.EconomyRate,
		"catches":         p.Catches,
		"stumpings":       p.Stumpings,
	}
	return UpsertMany(ctx, r.db, "players", []map[string]any{row}, ConflictReplace)
}

func (r *PlayerRepository) UpsertFormatStats(ctx context.Context, rows []player.FormatStats) error {
	if len(rows) == 0 {
		return nil
	}
	batch := make([]map[string]any, 0, len(rows))
	for _, s := range rows {
		batch = append(batch, map[string]any{
			"player_name":     s.PlayerName,
			"format":          s.Format,
			"matches":         s.Matches,
			"runs":            s.Runs,
			"average":         s.Average,
			"strike_rate":     s.StrikeRate,
			"hundreds":        s.Hundreds,
			"fifties":         s.Fifties,
			"wickets":         s.Wickets,
			"bowling_average": s.BowlingAverage,
			"economy":         s.Economy,
		})
	}
	return UpsertMany(ctx, r.db, "player_format_stats", batch, ConflictReplace)
}

type playerRow struct {
	ID             int64   `db:"id"`
	Name           string  `db:"name"`
	Country        string  `db:"country"`
	Role           string  `db:"role"`
	BattingStyle   string  `db:"batting_style"`
	BowlingStyle   string  `db:"bowling_style"`
	TotalRuns      int64   `db:"total_runs"`
	BattingAverage float64 `db:"batting_average"`
	StrikeRate     float64 `db:"strike_rate"`
	TotalWickets   int64   `db:"total_wickets"`
	BowlingAverage float64 `db:"bowling_average"`
	EconomyRate    float64 `db:"economy_rate"`
	Catches        int64   `db:"catches"`
	Stumpings      int64   `db:"stumpings"`
}

func (r *PlayerRepository) List(ctx context.Context, limit int) ([]player.Player, error) {
	query, args, err := querybuilder.Select(
		"id",
		"name",
		"COALESCE(country, '') AS country",
		"COALESCE(role, '') AS role",
		"COALESCE(batting_style, '') AS batting_style",
		"COALESCE(bowling_style, '') AS bowling_style",
		"COALESCE(total_runs, 0) AS total_runs",
		"COALESCE(batting_average, 0) AS batting_average",
		"COALESCE(strike_rate, 0) AS strike_rate",
		"COALESCE(total_wickets, 0) AS total_wickets",
		"COALESCE(bowling_average, 0) AS bowling_average",
		"COALESCE(economy_rate, 0) AS economy_rate",
		"COALESCE(catches, 0) AS catches",
		"COALESCE(stumpings, 0) AS stumpings",
	).
		From("players").
		OrderBy("total_runs DESC", "name ASC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build player list: %w", err)
	}

	var rows []playerRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:             row.ID,
			Name:           row.Name,
			Country:        row.Country,
			Role:           row.Role,
			BattingStyle:   row.BattingStyle,
			BowlingStyle:   row.BowlingStyle,
			TotalRuns:      row.TotalRuns,
			BattingAverage: row.BattingAverage,
			StrikeRate:     row.StrikeRate,
			TotalWickets:   row.TotalWickets,
			BowlingAverage: row.BowlingAverage,
			EconomyRate:    row.EconomyRate,
			Catches:        row.Catches,
			Stumpings:      row.Stumpings,
		})
	}
	return out, nil
}
