package sqlite

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestUpsertMany_IgnoreKeepsFirstRow(t *testing.T) {
	t.Parallel()

	db := newMigratedDB(t)
	ctx := context.Background()

	first := []map[string]any{{
		"venue_id": "31",
		"name":     "Eden Gardens",
		"city":     "Kolkata",
		"capacity": 66000,
	}}
	if err := UpsertMany(ctx, db, "venues", first, ConflictIgnore); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := []map[string]any{{
		"venue_id": "31",
		"name":     "Eden Gardens",
		"city":     "Kolkata",
		"capacity": 68000,
	}}
	if err := UpsertMany(ctx, db, "venues", second, ConflictIgnore); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var capacity int
	if err := db.Get(&capacity, `SELECT capacity FROM venues WHERE venue_id = '31'`); err != nil {
		t.Fatalf("read capacity: %v", err)
	}
	if capacity != 66000 {
		t.Fatalf("ignore policy must keep the first capacity, got %d", capacity)
	}
}

func TestUpsertMany_ReplaceKeepsLatestRow(t *testing.T) {
	t.Parallel()

	db := newMigratedDB(t)
	ctx := context.Background()

	if err := UpsertMany(ctx, db, "matches", []map[string]any{{
		"match_id": "1001",
		"team1":    "India",
		"team2":    "Australia",
		"status":   "upcoming",
	}}, ConflictReplace); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := UpsertMany(ctx, db, "matches", []map[string]any{{
		"match_id": "1001",
		"team1":    "India",
		"team2":    "Australia",
		"status":   "completed",
	}}, ConflictReplace); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var status string
	if err := db.Get(&status, `SELECT status FROM matches WHERE match_id = '1001'`); err != nil {
		t.Fatalf("read status: %v", err)
	}
	if status != "completed" {
		t.Fatalf("replace policy must keep the latest status, got %q", status)
	}

	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM matches`); err != nil {
		t.Fatalf("count matches: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single row after replace, got %d", count)
	}
}

func TestUpsertMany_CoercesAndDropsUnknownFields(t *testing.T) {
	t.Parallel()

	db := newMigratedDB(t)
	ctx := context.Background()

	rows := []map[string]any{{
		"name":        "Jasprit Bumrah",
		"country":     "India",
		"total_runs":  "1,234 runs",
		"strike_rate": "58.33 avg",
		"teamImageId": 123,
	}}
	if err := UpsertMany(ctx, db, "players", rows, ConflictIgnore); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	var got struct {
		TotalRuns  int64   `db:"total_runs"`
		StrikeRate float64 `db:"strike_rate"`
	}
	if err := db.Get(&got, `SELECT total_runs, strike_rate FROM players WHERE name = 'Jasprit Bumrah'`); err != nil {
		t.Fatalf("read player: %v", err)
	}
	if got.TotalRuns != 1234 {
		t.Fatalf("expected coerced total_runs 1234, got %d", got.TotalRuns)
	}
	if got.StrikeRate != 58.33 {
		t.Fatalf("expected coerced strike_rate 58.33, got %v", got.StrikeRate)
	}
}

func TestUpsertMany_NilBecomesNull(t *testing.T) {
	t.Parallel()

	db := newMigratedDB(t)
	ctx := context.Background()

	rows := []map[string]any{{
		"name":       "Mohammed Shami",
		"country":    "India",
		"total_runs": nil,
	}}
	if err := UpsertMany(ctx, db, "players", rows, ConflictIgnore); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	var nullRuns int
	if err := db.Get(&nullRuns, `SELECT COUNT(*) FROM players WHERE name = 'Mohammed Shami' AND total_runs IS NULL`); err != nil {
		t.Fatalf("read: %v", err)
	}
	if nullRuns != 1 {
		t.Fatalf("expected total_runs to be stored as NULL")
	}
}

func TestUpsertMany_UnknownTable(t *testing.T) {
	t.Parallel()

	db := newMigratedDB(t)
	err := UpsertMany(context.Background(), db, "nonexistent", []map[string]any{{"a": 1}}, ConflictIgnore)
	if !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("expected ErrUnknownTable, got %v", err)
	}
}

func TestUpsertMany_EmptyBatchIsNoop(t *testing.T) {
	t.Parallel()

	db := newMigratedDB(t)
	if err := UpsertMany(context.Background(), db, "players", nil, ConflictIgnore); err != nil {
		t.Fatalf("empty batch must be a no-op, got %v", err)
	}
}
