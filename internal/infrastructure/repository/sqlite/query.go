package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// QueryResult carries the output of a read-only query in presentation order.
type QueryResult struct {
	Columns   []string         `json:"columns"`
	Rows      []map[string]any `json:"rows"`
	Truncated bool             `json:"truncated"`
}

// QueryRunner executes read-only SQL against the store. Statement vetting is
// the caller's job; the runner only bounds the result set.
type QueryRunner struct {
	db *sqlx.DB
}

func NewQueryRunner(db *sqlx.DB) *QueryRunner {
	return &QueryRunner{db: db}
}

// Run executes the query and collects at most maxRows rows. When the result
// exceeds the cap the surplus is discarded and Truncated is set.
func (r *QueryRunner) Run(ctx context.Context, query string, maxRows int, args ...any) (*QueryResult, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("run query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read query columns: %w", err)
	}

	result := &QueryResult{Columns: columns, Rows: []map[string]any{}}
	for rows.Next() {
		if maxRows > 0 && len(result.Rows) >= maxRows {
			result.Truncated = true
			break
		}
		record := map[string]any{}
		if err := rows.MapScan(record); err != nil {
			return nil, fmt.Errorf("scan query row: %w", err)
		}
		result.Rows = append(result.Rows, normalizeRecord(record))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate query rows: %w", err)
	}
	return result, nil
}
