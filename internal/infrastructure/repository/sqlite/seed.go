package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/cricstats/livestats/internal/domain/innings"
	"github.com/cricstats/livestats/internal/domain/player"
	"github.com/cricstats/livestats/internal/platform/logging"
	"github.com/cricstats/livestats/internal/platform/querybuilder"
)

type seedPlayer struct {
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

type seedVenue struct {
	VenueID  string `db:"venue_id"`
	Name     string `db:"name"`
	City     string `db:"city"`
	Country  string `db:"country"`
	Capacity int64  `db:"capacity"`
}

type seedSeries struct {
	SeriesID     string `db:"series_id"`
	Name         string `db:"name"`
	HostCountry  string `db:"host_country"`
	Format       string `db:"format"`
	StartDate    string `db:"start_date"`
	TotalMatches int64  `db:"total_matches"`
}

type seedMatch struct {
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

type seedBatting struct {
	MatchID    string  `db:"match_id"`
	InningsNo  int64   `db:"innings_no"`
	Team       string  `db:"team"`
	PlayerName string  `db:"player_name"`
	Position   int64   `db:"position"`
	Runs       int64   `db:"runs"`
	Balls      int64   `db:"balls"`
	StrikeRate float64 `db:"strike_rate"`
}

type seedBowling struct {
	MatchID      string  `db:"match_id"`
	InningsNo    int64   `db:"innings_no"`
	Team         string  `db:"team"`
	PlayerName   string  `db:"player_name"`
	Overs        float64 `db:"overs"`
	Balls        int64   `db:"balls"`
	RunsConceded int64   `db:"runs_conceded"`
	Wickets      int64   `db:"wickets"`
	Economy      float64 `db:"economy"`
}

// BootstrapSeed loads a small demo dataset so the dashboard and the canned
// query catalog have something to show before the first ingestion run. The
// seed only fires on an empty store: any existing player or match row means
// real or previously seeded data is present and nothing is touched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}

	var existing int
	err := db.GetContext(ctx, &existing,
		`SELECT (SELECT COUNT(*) FROM players) + (SELECT COUNT(*) FROM matches)`)
	if err != nil {
		return fmt.Errorf("check seed precondition: %w", err)
	}
	if existing > 0 {
		logger.DebugContext(ctx, "store already populated, skipping demo seed", "rows", existing)
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, p := range demoPlayers() {
		if err := seedInsert(ctx, tx, "players", p); err != nil {
			return err
		}
	}
	for _, v := range demoVenues() {
		if err := seedInsert(ctx, tx, "venues", v); err != nil {
			return err
		}
	}
	for _, s := range demoSeries() {
		if err := seedInsert(ctx, tx, "series", s); err != nil {
			return err
		}
	}
	for _, m := range demoMatches() {
		if err := seedInsert(ctx, tx, "matches", m); err != nil {
			return err
		}
	}

	batting := demoBatting()
	for _, b := range batting {
		if err := seedInsert(ctx, tx, "batting_innings", b); err != nil {
			return err
		}
	}
	for _, b := range demoBowling() {
		if err := seedInsert(ctx, tx, "bowling_spells", b); err != nil {
			return err
		}
	}

	entries := make([]innings.BattingEntry, 0, len(batting))
	for _, b := range batting {
		entries = append(entries, innings.BattingEntry{
			MatchID:    b.MatchID,
			InningsNo:  b.InningsNo,
			Team:       b.Team,
			PlayerName: b.PlayerName,
			Position:   b.Position,
			Runs:       b.Runs,
			Balls:      b.Balls,
			StrikeRate: b.StrikeRate,
		})
	}
	for _, p := range innings.BuildPartnerships(entries, innings.PartnershipThreshold) {
		row := struct {
			MatchID     string `db:"match_id"`
			InningsNo   int64  `db:"innings_no"`
			Team        string `db:"team"`
			Player1Name string `db:"player1_name"`
			Player2Name string `db:"player2_name"`
			Runs        int64  `db:"runs"`
		}{p.MatchID, p.InningsNo, p.Team, p.Player1Name, p.Player2Name, p.Runs}
		if err := seedInsert(ctx, tx, "partnerships", row); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	logger.InfoContext(ctx, "demo dataset seeded",
		"players", len(demoPlayers()), "matches", len(demoMatches()))
	return nil
}

func seedInsert(ctx context.Context, tx *sqlx.Tx, table string, model any) error {
	query, args, err := querybuilder.InsertModelOrIgnore(table, model)
	if err != nil {
		return fmt.Errorf("build seed insert for %s: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("seed %s: %w", table, err)
	}
	return nil
}

func demoPlayers() []seedPlayer {
	return []seedPlayer{
		{"Virat Kohli", "India", player.RoleBatter, "Right-hand bat", "Right-arm medium", 26733, 53.62, 93.62, 8, 166.25, 6.22, 148, 0},
		{"Rohit Sharma", "India", player.RoleBatter, "Right-hand bat", "Right-arm offbreak", 19700, 42.01, 97.30, 11, 61.54, 5.23, 97, 0},
		{"Jasprit Bumrah", "India", player.RoleBowler, "Right-hand bat", "Right-arm fast", 391, 6.30, 52.20, 443, 20.16, 4.59, 29, 0},
		{"Ravindra Jadeja", "India", player.RoleAllRounder, "Left-hand bat", "Slow left-arm orthodox", 6791, 35.26, 82.63, 591, 28.91, 3.96, 110, 0},
		{"Steve Smith", "Australia", player.RoleBatter, "Right-hand bat", "Right-arm legbreak", 17556, 51.49, 80.10, 29, 48.77, 4.15, 211, 0},
		{"Pat Cummins", "Australia", player.RoleAllRounder, "Right-hand bat", "Right-arm fast", 1623, 17.09, 71.50, 512, 22.23, 4.80, 52, 0},
		{"Joe Root", "England", player.RoleAllRounder, "Right-hand bat", "Right-arm offbreak", 20178, 49.22, 76.40, 82, 45.06, 4.02, 210, 0},
		{"Kane Williamson", "New Zealand", player.RoleBatter, "Right-hand bat", "Right-arm offbreak", 18266, 50.99, 74.20, 40, 42.10, 5.11, 175, 0},
		{"Rashid Khan", "Afghanistan", player.RoleAllRounder, "Right-hand bat", "Right-arm legbreak", 2194, 18.59, 104.30, 586, 18.64, 5.89, 51, 0},
		{"Quinton de Kock", "South Africa", player.RoleBatter, "Left-hand bat", "", 12232, 38.70, 91.80, 0, 0, 0, 310, 34},
	}
}

func demoVenues() []seedVenue {
	return []seedVenue{
		{"101", "Eden Gardens", "Kolkata", "India", 66000},
		{"102", "Melbourne Cricket Ground", "Melbourne", "Australia", 100024},
		{"103", "Lord's", "London", "England", 31100},
		{"104", "Wankhede Stadium", "Mumbai", "India", 33108},
	}
}

func demoSeries() []seedSeries {
	return []seedSeries{
		{"9001", "Border-Gavaskar Trophy 2025", "Australia", "TEST", "2025-11-22", 5},
		{"9002", "ICC Cricket World Cup 2027", "South Africa", "ODI", "2027-10-09", 48},
		{"9003", "India tour of England 2026", "England", "T20I", "2026-07-01", 5},
	}
}

func demoMatches() []seedMatch {
	return []seedMatch{
		{"5001", "9001", "Border-Gavaskar Trophy 2025", "TEST", "Australia", "India", "Melbourne Cricket Ground", "Melbourne", "Australia", "2025-12-26 00:00:00", "completed", "India", 23, "runs", "Australia", "bat"},
		{"5002", "9001", "Border-Gavaskar Trophy 2025", "TEST", "Australia", "India", "Eden Gardens", "Kolkata", "India", "2026-01-03 04:00:00", "completed", "Australia", 4, "wickets", "India", "bowl"},
		{"5003", "9003", "India tour of England 2026", "T20I", "England", "India", "Lord's", "London", "England", "2026-07-04 17:30:00", "live", "", 0, "", "England", "bat"},
		{"5004", "9003", "India tour of England 2026", "T20I", "England", "India", "Wankhede Stadium", "Mumbai", "India", "2026-09-12 13:30:00", "upcoming", "", 0, "", "", ""},
	}
}

func demoBatting() []seedBatting {
	return []seedBatting{
		{"5001", 1, "Australia", "Steve Smith", 4, 85, 163, 52.15},
		{"5001", 1, "Australia", "Pat Cummins", 8, 12, 31, 38.71},
		{"5001", 2, "India", "Rohit Sharma", 1, 42, 68, 61.76},
		{"5001", 2, "India", "Virat Kohli", 4, 116, 204, 56.86},
		{"5001", 2, "India", "Ravindra Jadeja", 6, 58, 97, 59.79},
		{"5003", 1, "England", "Joe Root", 3, 44, 31, 141.94},
		{"5003", 2, "India", "Rohit Sharma", 1, 67, 38, 176.32},
		{"5003", 2, "India", "Virat Kohli", 3, 35, 24, 145.83},
	}
}

func demoBowling() []seedBowling {
	return []seedBowling{
		{"5001", 1, "India", "Jasprit Bumrah", 24.2, 146, 67, 5, 2.75},
		{"5001", 1, "India", "Ravindra Jadeja", 31.0, 186, 84, 2, 2.71},
		{"5001", 2, "Australia", "Pat Cummins", 28.4, 172, 91, 3, 3.17},
		{"5003", 1, "India", "Jasprit Bumrah", 4.0, 24, 21, 2, 5.25},
		{"5003", 2, "England", "Joe Root", 2.0, 12, 19, 0, 9.50},
	}
}
