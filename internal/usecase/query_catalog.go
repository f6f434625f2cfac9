package usecase

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/cricstats/livestats/internal/infrastructure/repository/sqlite"
)

// Difficulty tiers for the canned analytics catalog.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// maxQueryRows bounds every dashboard result set.
const maxQueryRows = 500

// CannedQuery is one ready-made analytics query.
type CannedQuery struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Level string `json:"level"`
	SQL   string `json:"sql"`
}

// QueryService runs the canned catalog and vetted ad-hoc SQL against the
// store.
type QueryService struct {
	runner *sqlite.QueryRunner
	byID   map[string]CannedQuery
}

func NewQueryService(runner *sqlite.QueryRunner) *QueryService {
	byID := make(map[string]CannedQuery, len(cannedQueries))
	for _, q := range cannedQueries {
		byID[q.ID] = q
	}
	return &QueryService{runner: runner, byID: byID}
}

// Catalog lists the canned queries in difficulty order.
func (s *QueryService) Catalog() []CannedQuery {
	out := make([]CannedQuery, len(cannedQueries))
	copy(out, cannedQueries)
	return out
}

func (s *QueryService) RunCanned(ctx context.Context, id string) (*sqlite.QueryResult, error) {
	q, ok := s.byID[id]
	if !ok {
		return nil, crerr.Wrapf(ErrNotFound, "query %q", id)
	}
	return s.runner.Run(ctx, q.SQL, maxQueryRows)
}

// RunCustom executes caller-supplied SQL after vetting it down to a single
// read-only statement.
func (s *QueryService) RunCustom(ctx context.Context, query string) (*sqlite.QueryResult, error) {
	vetted, err := vetCustomSQL(query)
	if err != nil {
		return nil, err
	}
	return s.runner.Run(ctx, vetted, maxQueryRows)
}

// vetCustomSQL accepts exactly one SELECT or WITH statement. A trailing
// semicolon is tolerated; any other semicolon means a second statement and is
// rejected.
func vetCustomSQL(query string) (string, error) {
	trimmed := strings.TrimSpace(query)
	trimmed = strings.TrimSuffix(trimmed, ";")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return "", crerr.Wrap(ErrInvalidInput, "empty query")
	}
	if strings.Contains(trimmed, ";") {
		return "", crerr.Wrap(ErrInvalidInput, "multiple statements are not allowed")
	}

	head := strings.ToUpper(trimmed)
	if !strings.HasPrefix(head, "SELECT") && !strings.HasPrefix(head, "WITH") {
		return "", crerr.Wrap(ErrInvalidInput, "only SELECT queries are allowed")
	}
	return trimmed, nil
}

var cannedQueries = []CannedQuery{
	{
		ID:    "all-players",
		Title: "All players",
		Level: LevelBeginner,
		SQL:   `SELECT name, country, role FROM players ORDER BY name`,
	},
	{
		ID:    "players-by-country",
		Title: "Player counts per country",
		Level: LevelBeginner,
		SQL:   `SELECT country, COUNT(*) AS players FROM players GROUP BY country ORDER BY players DESC`,
	},
	{
		ID:    "top-run-scorers",
		Title: "Top 10 run scorers",
		Level: LevelBeginner,
		SQL:   `SELECT name, country, total_runs FROM players ORDER BY total_runs DESC LIMIT 10`,
	},
	{
		ID:    "top-wicket-takers",
		Title: "Top 10 wicket takers",
		Level: LevelBeginner,
		SQL:   `SELECT name, country, total_wickets FROM players ORDER BY total_wickets DESC LIMIT 10`,
	},
	{
		ID:    "all-rounders",
		Title: "All-rounders",
		Level: LevelBeginner,
		SQL:   `SELECT name, country, total_runs, total_wickets FROM players WHERE role = 'All-rounder' ORDER BY total_runs DESC`,
	},
	{
		ID:    "completed-matches",
		Title: "Completed matches",
		Level: LevelBeginner,
		SQL:   `SELECT match_id, team1, team2, venue, start_time, winner, victory_margin, victory_type FROM matches WHERE status = 'completed' ORDER BY start_time DESC`,
	},
	{
		ID:    "upcoming-matches",
		Title: "Upcoming fixtures",
		Level: LevelBeginner,
		SQL:   `SELECT match_id, team1, team2, venue, city, start_time FROM matches WHERE status = 'upcoming' ORDER BY start_time`,
	},
	{
		ID:    "largest-venues",
		Title: "Venues by capacity",
		Level: LevelBeginner,
		SQL:   `SELECT name, city, country, capacity FROM venues ORDER BY capacity DESC`,
	},
	{
		ID:    "role-breakdown",
		Title: "Squad composition by role",
		Level: LevelIntermediate,
		SQL:   `SELECT role, COUNT(*) AS players, ROUND(AVG(total_runs), 1) AS avg_runs FROM players GROUP BY role ORDER BY players DESC`,
	},
	{
		ID:    "batting-average-by-country",
		Title: "Average batting average per country",
		Level: LevelIntermediate,
		SQL:   `SELECT country, ROUND(AVG(batting_average), 2) AS avg_average, COUNT(*) AS players FROM players WHERE batting_average > 0 GROUP BY country HAVING COUNT(*) >= 1 ORDER BY avg_average DESC`,
	},
	{
		ID:    "matches-per-venue",
		Title: "Matches hosted per venue",
		Level: LevelIntermediate,
		SQL:   `SELECT venue, city, COUNT(*) AS matches FROM matches WHERE venue <> '' GROUP BY venue, city ORDER BY matches DESC`,
	},
	{
		ID:    "victory-types",
		Title: "Wins by runs versus wins by wickets",
		Level: LevelIntermediate,
		SQL:   `SELECT victory_type, COUNT(*) AS wins, ROUND(AVG(victory_margin), 1) AS avg_margin FROM matches WHERE victory_type <> '' GROUP BY victory_type`,
	},
	{
		ID:    "centuries-by-format",
		Title: "Century counts per format",
		Level: LevelIntermediate,
		SQL:   `SELECT format, SUM(hundreds) AS centuries, SUM(fifties) AS fifties FROM player_format_stats GROUP BY format ORDER BY centuries DESC`,
	},
	{
		ID:    "economical-bowlers",
		Title: "Bowlers with economy under 5",
		Level: LevelIntermediate,
		SQL:   `SELECT name, country, economy_rate, total_wickets FROM players WHERE economy_rate > 0 AND economy_rate < 5 ORDER BY economy_rate`,
	},
	{
		ID:    "recent-results",
		Title: "Latest 10 results",
		Level: LevelIntermediate,
		SQL:   `SELECT team1, team2, winner, victory_margin || ' ' || victory_type AS margin, start_time FROM matches WHERE status = 'completed' ORDER BY start_time DESC LIMIT 10`,
	},
	{
		ID:    "series-fixtures",
		Title: "Fixtures per series",
		Level: LevelIntermediate,
		SQL:   `SELECT series_name, COUNT(*) AS fixtures, SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END) AS played FROM matches WHERE series_name <> '' GROUP BY series_name ORDER BY fixtures DESC`,
	},
	{
		ID:    "busiest-batting-positions",
		Title: "Runs by batting position",
		Level: LevelIntermediate,
		SQL:   `SELECT position, COUNT(*) AS innings, SUM(runs) AS runs, ROUND(AVG(runs), 1) AS avg_runs FROM batting_innings GROUP BY position ORDER BY position`,
	},
	{
		ID:    "top-partnerships",
		Title: "Biggest partnerships",
		Level: LevelAdvanced,
		SQL:   `SELECT p.player1_name, p.player2_name, p.team, p.runs, m.team1 || ' v ' || m.team2 AS fixture FROM partnerships p LEFT JOIN matches m ON m.match_id = p.match_id ORDER BY p.runs DESC LIMIT 15`,
	},
	{
		ID:    "strike-rate-leaders",
		Title: "Strike-rate leaders with at least 1000 runs",
		Level: LevelAdvanced,
		SQL:   `SELECT name, country, strike_rate, total_runs FROM players WHERE total_runs >= 1000 ORDER BY strike_rate DESC LIMIT 10`,
	},
	{
		ID:    "match-top-scorers",
		Title: "Top scorer in each match",
		Level: LevelAdvanced,
		SQL: `SELECT b.match_id, b.player_name, b.team, b.runs
FROM batting_innings b
JOIN (SELECT match_id, MAX(runs) AS best FROM batting_innings GROUP BY match_id) t
  ON t.match_id = b.match_id AND t.best = b.runs
ORDER BY b.runs DESC`,
	},
	{
		ID:    "five-wicket-hauls",
		Title: "Five-wicket hauls",
		Level: LevelAdvanced,
		SQL:   `SELECT s.player_name, s.team, s.wickets, s.runs_conceded, m.team1 || ' v ' || m.team2 AS fixture FROM bowling_spells s LEFT JOIN matches m ON m.match_id = s.match_id WHERE s.wickets >= 5 ORDER BY s.wickets DESC, s.runs_conceded`,
	},
	{
		ID:    "format-versatility",
		Title: "Players active in three or more formats",
		Level: LevelAdvanced,
		SQL:   `SELECT player_name, COUNT(DISTINCT format) AS formats, SUM(runs) AS total_runs FROM player_format_stats GROUP BY player_name HAVING COUNT(DISTINCT format) >= 3 ORDER BY formats DESC, total_runs DESC`,
	},
	{
		ID:    "team-win-counts",
		Title: "Wins per team",
		Level: LevelAdvanced,
		SQL:   `SELECT winner AS team, COUNT(*) AS wins FROM matches WHERE status = 'completed' AND winner <> '' GROUP BY winner ORDER BY wins DESC`,
	},
	{
		ID:    "home-away-wins",
		Title: "Home and away wins per team",
		Level: LevelAdvanced,
		SQL:   `SELECT winner AS team, SUM(CASE WHEN venue_country <> '' AND winner = venue_country THEN 1 ELSE 0 END) AS home_wins, SUM(CASE WHEN venue_country <> '' AND winner <> venue_country THEN 1 ELSE 0 END) AS away_or_neutral_wins FROM matches WHERE status = 'completed' AND winner <> '' GROUP BY winner ORDER BY home_wins DESC, away_or_neutral_wins DESC, team`,
	},
	{
		ID:    "close-finishes",
		Title: "Close finishes",
		Level: LevelAdvanced,
		SQL:   `SELECT team1, team2, winner, victory_margin, victory_type, start_time FROM matches WHERE status = 'completed' AND ((victory_type = 'wickets' AND victory_margin <= 2) OR (victory_type = 'runs' AND victory_margin <= 10)) ORDER BY start_time DESC`,
	},
	{
		ID:    "bowling-workload",
		Title: "Bowling workload per player",
		Level: LevelAdvanced,
		SQL: `WITH workload AS (
  SELECT player_name, SUM(balls) AS balls, SUM(wickets) AS wickets, SUM(runs_conceded) AS conceded
  FROM bowling_spells GROUP BY player_name
)
SELECT player_name, balls, wickets, ROUND(conceded * 6.0 / NULLIF(balls, 0), 2) AS economy
FROM workload ORDER BY balls DESC`,
	},
}
