package sqlite

import (
	"context"
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/cricstats/livestats/internal/platform/querybuilder"
)

var (
	// ErrUnknownColumn is returned when a row payload names a column the
	// target table does not have.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrRowNotFound is returned when a keyed update or delete matches
	// nothing.
	ErrRowNotFound = errors.New("row not found")
)

// TableAdmin exposes schema-driven access to every user table in the store.
// All table and column names are validated against sqlite's own catalog
// before they are ever spliced into SQL.
type TableAdmin struct {
	db *sqlx.DB
}

func NewTableAdmin(db *sqlx.DB) *TableAdmin {
	return &TableAdmin{db: db}
}

func (a *TableAdmin) ListTables(ctx context.Context) ([]string, error) {
	var names []string
	err := a.db.SelectContext(ctx, &names,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return names, nil
}

// Columns describes a table. The table name is checked against the catalog
// first, so a bogus name fails with ErrUnknownTable rather than a SQL error.
func (a *TableAdmin) Columns(ctx context.Context, table string) ([]ColumnInfo, error) {
	if err := a.ensureTable(ctx, table); err != nil {
		return nil, err
	}
	return tableColumns(ctx, a.db, table)
}

// PrimaryKey returns the table's single-column primary key, or "rowid" for
// tables without a declared one. Composite keys are not supported; the
// schema manager never creates any.
func (a *TableAdmin) PrimaryKey(ctx context.Context, table string) (string, error) {
	cols, err := a.Columns(ctx, table)
	if err != nil {
		return "", err
	}
	for _, col := range cols {
		if col.PK == 1 {
			return col.Name, nil
		}
	}
	return "rowid", nil
}

// Rows reads a page of rows as loosely-typed maps, ordered by primary key so
// paging is stable.
func (a *TableAdmin) Rows(ctx context.Context, table string, limit, offset int) ([]map[string]any, error) {
	pk, err := a.PrimaryKey(ctx, table)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	query, args, err := querybuilder.Select(pk+" AS __key", "*").
		From(table).
		OrderBy(pk + " ASC").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build row page: %w", err)
	}

	rows, err := a.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("read rows of %s: %w", table, err)
	}
	defer rows.Close()

	var out []map[string]any
	for rows.Next() {
		record := map[string]any{}
		if err := rows.MapScan(record); err != nil {
			return nil, fmt.Errorf("scan row of %s: %w", table, err)
		}
		out = append(out, normalizeRecord(record))
	}
	return out, rows.Err()
}

// InsertRow writes one row, coercing every value onto its declared column
// type. Unlike the ingestion upserts this is a plain insert, so key conflicts
// surface to the caller.
func (a *TableAdmin) InsertRow(ctx context.Context, table string, values map[string]any) error {
	declared, err := a.validatedColumns(ctx, table, values)
	if err != nil {
		return err
	}

	columns := make([]string, 0, len(values))
	for key := range values {
		columns = append(columns, key)
	}
	sort.Strings(columns)

	bound := make([]any, len(columns))
	for i, col := range columns {
		bound[i] = Coerce(values[col], declared[col])
	}

	query, args, err := querybuilder.InsertInto(table).
		Columns(columns...).
		Values(bound...).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

// UpdateRow updates the row whose primary key equals key.
func (a *TableAdmin) UpdateRow(ctx context.Context, table string, key any, values map[string]any) error {
	declared, err := a.validatedColumns(ctx, table, values)
	if err != nil {
		return err
	}
	pk, err := a.PrimaryKey(ctx, table)
	if err != nil {
		return err
	}

	columns := make([]string, 0, len(values))
	for col := range values {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	builder := querybuilder.Update(table)
	for _, col := range columns {
		builder.Set(col, Coerce(values[col], declared[col]))
	}
	builder.Where(querybuilder.Eq(pk, key))

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}
	res, err := a.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	return affectedOrNotFound(res.RowsAffected())
}

// DeleteRow deletes the row whose primary key equals key.
func (a *TableAdmin) DeleteRow(ctx context.Context, table string, key any) error {
	pk, err := a.PrimaryKey(ctx, table)
	if err != nil {
		return err
	}

	query, args, err := querybuilder.DeleteFrom(table).
		Where(querybuilder.Eq(pk, key)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	res, err := a.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	return affectedOrNotFound(res.RowsAffected())
}

func (a *TableAdmin) ensureTable(ctx context.Context, table string) error {
	var count int
	err := a.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
	if err != nil {
		return fmt.Errorf("look up table %s: %w", table, err)
	}
	if count == 0 {
		return errors.Wrap(ErrUnknownTable, table)
	}
	return nil
}

func (a *TableAdmin) validatedColumns(ctx context.Context, table string, values map[string]any) (map[string]string, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no values given for %s", table)
	}
	if err := a.ensureTable(ctx, table); err != nil {
		return nil, err
	}
	declared, err := columnSet(ctx, a.db, table)
	if err != nil {
		return nil, err
	}
	for col := range values {
		if _, ok := declared[col]; !ok {
			return nil, errors.Wrapf(ErrUnknownColumn, "%s.%s", table, col)
		}
	}
	return declared, nil
}

func affectedOrNotFound(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRowNotFound
	}
	return nil
}

// normalizeRecord rewrites driver byte slices as strings so records marshal
// as JSON text instead of base64.
func normalizeRecord(record map[string]any) map[string]any {
	for key, value := range record {
		if b, ok := value.([]byte); ok {
			record[key] = string(b)
		}
	}
	return record
}
