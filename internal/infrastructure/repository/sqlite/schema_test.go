package sqlite

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/cricstats/livestats/internal/platform/logging"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newMigratedDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db := newTestDB(t)
	if err := EnsureSchema(context.Background(), db, logging.NewNop()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return db
}

func TestEnsureSchema_CreatesAllTables(t *testing.T) {
	t.Parallel()

	db := newMigratedDB(t)

	for _, table := range tableDefs {
		cols, err := tableColumns(context.Background(), db, table.Name)
		if err != nil {
			t.Fatalf("table_info %s: %v", table.Name, err)
		}
		have := make(map[string]bool, len(cols))
		for _, col := range cols {
			have[col.Name] = true
		}
		for _, col := range table.Columns {
			if !have[col.Name] {
				t.Fatalf("table %s missing column %s", table.Name, col.Name)
			}
		}
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := EnsureSchema(ctx, db, logging.NewNop()); err != nil {
			t.Fatalf("run %d: %v", i+1, err)
		}
	}

	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`); err != nil {
		t.Fatalf("count tables: %v", err)
	}
	if count != len(tableDefs) {
		t.Fatalf("expected %d tables, got %d", len(tableDefs), count)
	}
}

func TestEnsureSchema_AddsColumnsToExistingTable(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()

	// A store created by an older build carries only the baseline columns.
	if _, err := db.ExecContext(ctx, `CREATE TABLE players (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		country TEXT,
		role TEXT
	)`); err != nil {
		t.Fatalf("seed old table: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO players (name, country, role) VALUES ('Virat Kohli', 'India', 'Batter')`); err != nil {
		t.Fatalf("seed old row: %v", err)
	}

	if err := EnsureSchema(ctx, db, logging.NewNop()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	cols, err := columnSet(ctx, db, "players")
	if err != nil {
		t.Fatalf("columns: %v", err)
	}
	if _, ok := cols["total_wickets"]; !ok {
		t.Fatalf("expected total_wickets to be added, have %v", cols)
	}

	var name string
	if err := db.Get(&name, `SELECT name FROM players WHERE country = 'India'`); err != nil {
		t.Fatalf("existing row lost after migration: %v", err)
	}
	if name != "Virat Kohli" {
		t.Fatalf("unexpected row after migration: %q", name)
	}
}

func TestEnsureSchema_UniqueIndexes(t *testing.T) {
	t.Parallel()

	db := newMigratedDB(t)
	ctx := context.Background()

	if _, err := db.ExecContext(ctx, `INSERT INTO players (name, country) VALUES ('KL Rahul', 'India')`); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO players (name, country) VALUES ('KL Rahul', 'India')`); err == nil {
		t.Fatalf("expected unique index on players(name, country) to reject duplicate")
	}

	res, err := db.ExecContext(ctx, `INSERT OR IGNORE INTO players (name, country) VALUES ('KL Rahul', 'India')`)
	if err != nil {
		t.Fatalf("insert or ignore: %v", err)
	}
	if n, _ := res.RowsAffected(); n != 0 {
		t.Fatalf("expected duplicate to be ignored, affected %d rows", n)
	}
}
