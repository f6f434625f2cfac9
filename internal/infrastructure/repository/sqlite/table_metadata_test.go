package sqlite

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestTableAdmin_ListTables(t *testing.T) {
	t.Parallel()

	admin := NewTableAdmin(newMigratedDB(t))
	names, err := admin.ListTables(context.Background())
	if err != nil {
		t.Fatalf("list tables: %v", err)
	}

	have := make(map[string]bool, len(names))
	for _, name := range names {
		have[name] = true
	}
	for _, want := range []string{"players", "matches", "venues", "series", "batting_innings", "bowling_spells", "partnerships", "player_format_stats"} {
		if !have[want] {
			t.Fatalf("expected table %s in %v", want, names)
		}
	}
}

func TestTableAdmin_PrimaryKey(t *testing.T) {
	t.Parallel()

	admin := NewTableAdmin(newMigratedDB(t))
	ctx := context.Background()

	pk, err := admin.PrimaryKey(ctx, "matches")
	if err != nil {
		t.Fatalf("matches pk: %v", err)
	}
	if pk != "match_id" {
		t.Fatalf("expected match_id, got %s", pk)
	}

	if _, err := admin.PrimaryKey(ctx, "droids"); !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("expected ErrUnknownTable, got %v", err)
	}
}

func TestTableAdmin_CRUDRoundTrip(t *testing.T) {
	t.Parallel()

	admin := NewTableAdmin(newMigratedDB(t))
	ctx := context.Background()

	err := admin.InsertRow(ctx, "venues", map[string]any{
		"venue_id": "201",
		"name":     "Newlands",
		"city":     "Cape Town",
		"capacity": "25,000 seats",
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	rows, err := admin.Rows(ctx, "venues", 10, 0)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0]["capacity"] != int64(25000) {
		t.Fatalf("expected coerced capacity 25000, got %v (%T)", rows[0]["capacity"], rows[0]["capacity"])
	}
	if rows[0]["__key"] != "201" {
		t.Fatalf("expected row key 201, got %v", rows[0]["__key"])
	}

	if err := admin.UpdateRow(ctx, "venues", "201", map[string]any{"country": "South Africa"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := admin.UpdateRow(ctx, "venues", "999", map[string]any{"country": "Nowhere"}); !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}

	if err := admin.DeleteRow(ctx, "venues", "201"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := admin.DeleteRow(ctx, "venues", "201"); !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound on second delete, got %v", err)
	}
}

func TestTableAdmin_RejectsUnknownColumn(t *testing.T) {
	t.Parallel()

	admin := NewTableAdmin(newMigratedDB(t))
	err := admin.InsertRow(context.Background(), "venues", map[string]any{
		"venue_id":               "301",
		"name; DROP TABLE users": "x",
	})
	if !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
}

func TestTableAdmin_RowidFallback(t *testing.T) {
	t.Parallel()

	db := newMigratedDB(t)
	admin := NewTableAdmin(db)
	ctx := context.Background()

	if _, err := db.ExecContext(ctx, `CREATE TABLE notes (body TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO notes (body) VALUES ('pitch report')`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	pk, err := admin.PrimaryKey(ctx, "notes")
	if err != nil {
		t.Fatalf("pk: %v", err)
	}
	if pk != "rowid" {
		t.Fatalf("expected rowid fallback, got %s", pk)
	}

	rows, err := admin.Rows(ctx, "notes", 10, 0)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 || rows[0]["body"] != "pitch report" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
