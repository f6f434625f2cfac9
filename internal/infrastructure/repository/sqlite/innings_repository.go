package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/cricstats/livestats/internal/domain/innings"
	"github.com/cricstats/livestats/internal/platform/querybuilder"
)

type InningsRepository struct {
	db *sqlx.DB
}

func NewInningsRepository(db *sqlx.DB) *InningsRepository {
	return &InningsRepository{db: db}
}

var _ innings.Repository = (*InningsRepository)(nil)

// ReplaceForMatch rewrites the full innings detail for a match atomically so
// a re-ingested scorecard never leaves stale rows behind.
func (r *InningsRepository) ReplaceForMatch(ctx context.Context, matchID string, batting []innings.BattingEntry, bowling []innings.BowlingEntry, partnerships []innings.Partnership) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin innings tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"batting_innings", "bowling_spells", "partnerships"} {
		query, args, err := querybuilder.DeleteFrom(table).
			Where(querybuilder.Eq("match_id", matchID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build delete for %s: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clear %s for match %s: %w", table, matchID, err)
		}
	}

	if err := insertBatting(ctx, tx, batting); err != nil {
		return err
	}
	if err := insertBowling(ctx, tx, bowling); err != nil {
		return err
	}
	if err := insertPartnerships(ctx, tx, partnerships); err != nil {
		return err
	}

	return tx.Commit()
}

func insertBatting(ctx context.Context, tx *sqlx.Tx, entries []innings.BattingEntry) error {
	if len(entries) == 0 {
		return nil
	}
	builder := querybuilder.InsertInto("batting_innings").
		Columns("match_id", "innings_no", "team", "player_id", "player_name", "position", "runs", "balls", "strike_rate")
	for _, e := range entries {
		builder.Values(e.MatchID, e.InningsNo, e.Team, e.PlayerID, e.PlayerName, e.Position, e.Runs, e.Balls, e.StrikeRate)
	}
	return execInsert(ctx, tx, builder, "batting_innings")
}

func insertBowling(ctx context.Context, tx *sqlx.Tx, entries []innings.BowlingEntry) error {
	if len(entries) == 0 {
		return nil
	}
	builder := querybuilder.InsertInto("bowling_spells").
		Columns("match_id", "innings_no", "team", "player_id", "player_name", "overs", "balls", "runs_conceded", "wickets", "economy")
	for _, e := range entries {
		builder.Values(e.MatchID, e.InningsNo, e.Team, e.PlayerID, e.PlayerName, e.Overs, e.Balls, e.RunsConceded, e.Wickets, e.Economy)
	}
	return execInsert(ctx, tx, builder, "bowling_spells")
}

func insertPartnerships(ctx context.Context, tx *sqlx.Tx, entries []innings.Partnership) error {
	if len(entries) == 0 {
		return nil
	}
	builder := querybuilder.InsertInto("partnerships").
		Columns("match_id", "innings_no", "team", "player1_name", "player2_name", "runs")
	for _, e := range entries {
		builder.Values(e.MatchID, e.InningsNo, e.Team, e.Player1Name, e.Player2Name, e.Runs)
	}
	return execInsert(ctx, tx, builder, "partnerships")
}

func execInsert(ctx context.Context, tx *sqlx.Tx, builder *querybuilder.InsertBuilder, table string) error {
	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert for %s: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}
