package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/cricstats/livestats/internal/domain/match"
	"github.com/cricstats/livestats/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

var _ match.Repository = (*MatchRepository)(nil)

func (r *MatchRepository) Upsert(ctx context.Context, m match.Match) error {
	row := map[string]any{
		"match_id":       m.MatchID,
		"series_id":      m.SeriesID,
		"series_name":    m.SeriesName,
		"format":         m.Format,
		"team1":          m.Team1,
		"team2":          m.Team2,
		"venue":          m.Venue,
		"city":           m.City,
		"venue_country":  m.VenueCountry,
		"start_time":     m.StartTime,
		"status":         m.Status,
		"winner":         m.Winner,
		"victory_margin": m.VictoryMargin,
		"victory_type":   m.VictoryType,
		"toss_winner":    m.TossWinner,
		"toss_decision":  m.TossDecision,
	}
	return UpsertMany(ctx, r.db, "matches", []map[string]any{row}, ConflictReplace)
}

type matchRow struct {
	MatchID       string `db:"match_id"`
	SeriesID      string `db:"series_id"`
	SeriesName    string `db:"series_name"`
	Format        string `db:"format"`
	Team1         string `db:"team1"`
	Team2         string `db:"team2"`
	Venue         string `db:"venue"`
	City          string `db:"city"`
	VenueCountry  string `db:"venue_country"`
	StartTime     string `db:"start_time"`
	Status        string `db:"status"`
	Winner        string `db:"winner"`
	VictoryMargin int64  `db:"victory_margin"`
	VictoryType   string `db:"victory_type"`
	TossWinner    string `db:"toss_winner"`
	TossDecision  string `db:"toss_decision"`
}

func (r *MatchRepository) List(ctx context.Context, status string, limit int) ([]match.Match, error) {
	builder := querybuilder.Select(
		"match_id",
		"COALESCE(series_id, '') AS series_id",
		"COALESCE(series_name, '') AS series_name",
		"COALESCE(format, '') AS format",
		"COALESCE(team1, '') AS team1",
		"COALESCE(team2, '') AS team2",
		"COALESCE(venue, '') AS venue",
		"COALESCE(city, '') AS city",
		"COALESCE(venue_country, '') AS venue_country",
		"COALESCE(start_time, '') AS start_time",
		"COALESCE(status, '') AS status",
		"COALESCE(winner, '') AS winner",
		"COALESCE(victory_margin, 0) AS victory_margin",
		"COALESCE(victory_type, '') AS victory_type",
		"COALESCE(toss_winner, '') AS toss_winner",
		"COALESCE(toss_decision, '') AS toss_decision",
	).
		From("matches").
		OrderBy("start_time DESC").
		Limit(limit)
	if status != "" {
		builder.Where(querybuilder.Eq("status", status))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build match list: %w", err)
	}

	var rows []matchRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Match{
			MatchID:       row.MatchID,
			SeriesID:      row.SeriesID,
			SeriesName:    row.SeriesName,
			Format:        row.Format,
			Team1:         row.Team1,
			Team2:         row.Team2,
			Venue:         row.Venue,
			City:          row.City,
			VenueCountry:  row.VenueCountry,
			StartTime:     row.StartTime,
			Status:        row.Status,
			Winner:        row.Winner,
			VictoryMargin: row.VictoryMargin,
			VictoryType:   row.VictoryType,
			TossWinner:    row.TossWinner,
			TossDecision:  row.TossDecision,
		})
	}
	return out, nil
}
