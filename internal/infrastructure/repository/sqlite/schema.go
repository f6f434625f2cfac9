package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/cricstats/livestats/internal/platform/logging"
)

type columnDef struct {
	Name string
	Type string
}

type tableDef struct {
	Name    string
	Create  string
	Columns []columnDef
}

type indexDef struct {
	Name    string
	Table   string
	Columns []string
	Unique  bool
}

// tableDefs is the logical schema. Create statements carry the baseline
// column set; the Columns list is the up-to-date logical set, and EnsureSchema
// adds whatever a physical table is missing. Drops and type changes never
// happen.
var tableDefs = []tableDef{
	{
		Name: "players",
		Create: `CREATE TABLE IF NOT EXISTS players (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			country TEXT,
			role TEXT
		)`,
		Columns: []columnDef{
			{"name", "TEXT"},
			{"country", "TEXT"},
			{"role", "TEXT"},
			{"batting_style", "TEXT"},
			{"bowling_style", "TEXT"},
			{"total_runs", "INTEGER"},
			{"batting_average", "REAL"},
			{"strike_rate", "REAL"},
			{"total_wickets", "INTEGER"},
			{"bowling_average", "REAL"},
			{"economy_rate", "REAL"},
			{"catches", "INTEGER"},
			{"stumpings", "INTEGER"},
		},
	},
	{
		Name: "venues",
		Create: `CREATE TABLE IF NOT EXISTS venues (
			venue_id TEXT PRIMARY KEY,
			name TEXT
		)`,
		Columns: []columnDef{
			{"name", "TEXT"},
			{"city", "TEXT"},
			{"country", "TEXT"},
			{"capacity", "INTEGER"},
		},
	},
	{
		Name: "series",
		Create: `CREATE TABLE IF NOT EXISTS series (
			series_id TEXT PRIMARY KEY,
			name TEXT
		)`,
		Columns: []columnDef{
			{"name", "TEXT"},
			{"host_country", "TEXT"},
			{"format", "TEXT"},
			{"start_date", "TEXT"},
			{"total_matches", "INTEGER"},
		},
	},
	{
		Name: "matches",
		Create: `CREATE TABLE IF NOT EXISTS matches (
			match_id TEXT PRIMARY KEY,
			team1 TEXT,
			team2 TEXT,
			status TEXT
		)`,
		Columns: []columnDef{
			{"series_id", "TEXT"},
			{"series_name", "TEXT"},
			{"format", "TEXT"},
			{"team1", "TEXT"},
			{"team2", "TEXT"},
			{"venue", "TEXT"},
			{"city", "TEXT"},
			{"venue_country", "TEXT"},
			{"start_time", "TEXT"},
			{"status", "TEXT"},
			{"winner", "TEXT"},
			{"victory_margin", "INTEGER"},
			{"victory_type", "TEXT"},
			{"toss_winner", "TEXT"},
			{"toss_decision", "TEXT"},
		},
	},
	{
		Name: "batting_innings",
		Create: `CREATE TABLE IF NOT EXISTS batting_innings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT,
			innings_no INTEGER
		)`,
		Columns: []columnDef{
			{"match_id", "TEXT"},
			{"innings_no", "INTEGER"},
			{"team", "TEXT"},
			{"player_id", "TEXT"},
			{"player_name", "TEXT"},
			{"position", "INTEGER"},
			{"runs", "INTEGER"},
			{"balls", "INTEGER"},
			{"strike_rate", "REAL"},
		},
	},
	{
		Name: "bowling_spells",
		Create: `CREATE TABLE IF NOT EXISTS bowling_spells (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT,
			innings_no INTEGER
		)`,
		Columns: []columnDef{
			{"match_id", "TEXT"},
			{"innings_no", "INTEGER"},
			{"team", "TEXT"},
			{"player_id", "TEXT"},
			{"player_name", "TEXT"},
			{"overs", "REAL"},
			{"balls", "INTEGER"},
			{"runs_conceded", "INTEGER"},
			{"wickets", "INTEGER"},
			{"economy", "REAL"},
		},
	},
	{
		Name: "player_format_stats",
		Create: `CREATE TABLE IF NOT EXISTS player_format_stats (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_name TEXT,
			format TEXT
		)`,
		Columns: []columnDef{
			{"player_name", "TEXT"},
			{"format", "TEXT"},
			{"matches", "INTEGER"},
			{"runs", "INTEGER"},
			{"average", "REAL"},
			{"strike_rate", "REAL"},
			{"hundreds", "INTEGER"},
			{"fifties", "INTEGER"},
			{"wickets", "INTEGER"},
			{"bowling_average", "REAL"},
			{"economy", "REAL"},
		},
	},
	{
		Name: "partnerships",
		Create: `CREATE TABLE IF NOT EXISTS partnerships (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT,
			innings_no INTEGER
		)`,
		Columns: []columnDef{
			{"match_id", "TEXT"},
			{"innings_no", "INTEGER"},
			{"team", "TEXT"},
			{"player1_name", "TEXT"},
			{"player2_name", "TEXT"},
			{"runs", "INTEGER"},
		},
	},
}

var indexDefs = []indexDef{
	{Name: "idx_players_identity", Table: "players", Columns: []string{"name", "country"}, Unique: true},
	{Name: "idx_players_name", Table: "players", Columns: []string{"name"}},
	{Name: "idx_format_stats_identity", Table: "player_format_stats", Columns: []string{"player_name", "format"}, Unique: true},
	{Name: "idx_matches_start_time", Table: "matches", Columns: []string{"start_time"}},
	{Name: "idx_matches_status", Table: "matches", Columns: []string{"status"}},
	{Name: "idx_batting_innings_match", Table: "batting_innings", Columns: []string{"match_id"}},
	{Name: "idx_bowling_spells_match", Table: "bowling_spells", Columns: []string{"match_id"}},
	{Name: "idx_partnerships_match", Table: "partnerships", Columns: []string{"match_id"}},
}

// EnsureSchema creates missing tables, adds missing columns, and creates
// indexes whose columns exist. Calling it repeatedly yields the same schema.
// Individual column or index failures are logged and skipped so one bad step
// never blocks the rest of the migration.
func EnsureSchema(ctx context.Context, db *sqlx.DB, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}

	for _, table := range tableDefs {
		if _, err := db.ExecContext(ctx, table.Create); err != nil {
			return fmt.Errorf("create table %s: %w", table.Name, err)
		}

		existing, err := columnSet(ctx, db, table.Name)
		if err != nil {
			return fmt.Errorf("read columns of %s: %w", table.Name, err)
		}
		for _, col := range table.Columns {
			if _, ok := existing[col.Name]; ok {
				continue
			}
			ddl := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table.Name, col.Name, col.Type)
			if _, err := db.ExecContext(ctx, ddl); err != nil {
				logger.WarnContext(ctx, "skip column migration",
					"table", table.Name, "column", col.Name, "error", err)
			}
		}
	}

	for _, idx := range indexDefs {
		existing, err := columnSet(ctx, db, idx.Table)
		if err != nil {
			logger.WarnContext(ctx, "skip index migration", "index", idx.Name, "error", err)
			continue
		}
		missing := false
		for _, col := range idx.Columns {
			if _, ok := existing[col]; !ok {
				missing = true
				break
			}
		}
		if missing {
			continue
		}

		unique := ""
		if idx.Unique {
			unique = "UNIQUE "
		}
		ddl := fmt.Sprintf("CREATE %sINDEX IF NOT EXISTS %s ON %s (%s)",
			unique, idx.Name, idx.Table, strings.Join(idx.Columns, ", "))
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			logger.WarnContext(ctx, "skip index migration", "index", idx.Name, "error", err)
		}
	}

	return nil
}

// ColumnInfo mirrors one PRAGMA table_info row.
type ColumnInfo struct {
	CID          int            `db:"cid"`
	Name         string         `db:"name"`
	Type         string         `db:"type"`
	NotNull      int            `db:"notnull"`
	DefaultValue sql.NullString `db:"dflt_value"`
	PK           int            `db:"pk"`
}

func tableColumns(ctx context.Context, db sqlx.QueryerContext, table string) ([]ColumnInfo, error) {
	var out []ColumnInfo
	query := fmt.Sprintf("PRAGMA table_info(%s)", quoteIdent(table))
	if err := sqlx.SelectContext(ctx, db, &out, query); err != nil {
		return nil, fmt.Errorf("table_info %s: %w", table, err)
	}
	return out, nil
}

func columnSet(ctx context.Context, db sqlx.QueryerContext, table string) (map[string]string, error) {
	cols, err := tableColumns(ctx, db, table)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(cols))
	for _, col := range cols {
		out[col.Name] = col.Type
	}
	return out, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
