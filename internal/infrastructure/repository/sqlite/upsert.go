package sqlite

import (
	"context"
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/cricstats/livestats/internal/platform/querybuilder"
)

// ConflictPolicy selects what happens when an inserted row collides with an
// existing one on a primary key or unique index.
type ConflictPolicy string

const (
	// ConflictIgnore keeps the stored row and drops the incoming one.
	ConflictIgnore ConflictPolicy = "ignore"
	// ConflictReplace overwrites the stored row with the incoming one.
	ConflictReplace ConflictPolicy = "replace"
)

// ErrUnknownTable is returned when an upsert targets a table the schema
// manager never created.
var ErrUnknownTable = errors.New("unknown table")

// UpsertMany writes a batch of loosely-typed rows into table in one
// transaction. The column list is the intersection of the first row's keys
// with the table's physical columns, so payload fields with no column are
// dropped and columns the payload misses stay NULL. Every value passes
// through Coerce against the declared column type before binding.
func UpsertMany(ctx context.Context, db *sqlx.DB, table string, rows []map[string]any, policy ConflictPolicy) error {
	if len(rows) == 0 {
		return nil
	}

	declared, err := columnSet(ctx, db, table)
	if err != nil {
		return err
	}
	if len(declared) == 0 {
		return errors.Wrap(ErrUnknownTable, table)
	}

	columns := make([]string, 0, len(rows[0]))
	for key := range rows[0] {
		if _, ok := declared[key]; ok {
			columns = append(columns, key)
		}
	}
	if len(columns) == 0 {
		return fmt.Errorf("no payload field of %s matches a column", table)
	}
	sort.Strings(columns)

	builder := querybuilder.InsertInto(table).Columns(columns...)
	switch policy {
	case ConflictReplace:
		builder.OrReplace()
	default:
		builder.OrIgnore()
	}

	for _, row := range rows {
		values := make([]any, len(columns))
		for i, col := range columns {
			values[i] = Coerce(row[col], declared[col])
		}
		builder.Values(values...)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert for %s: %w", table, err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert tx: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("upsert into %s: %w", table, err)
	}
	return tx.Commit()
}
