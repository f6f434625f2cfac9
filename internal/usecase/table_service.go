package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/cricstats/livestats/internal/infrastructure/repository/sqlite"
)

// TableColumn describes one column of a store table for the dashboard's
// schema browser.
type TableColumn struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	NotNull    bool   `json:"notNull"`
	PrimaryKey bool   `json:"primaryKey"`
}

// TableService exposes generic table browsing and row editing over the
// store's catalog.
type TableService struct {
	admin *sqlite.TableAdmin
}

func NewTableService(admin *sqlite.TableAdmin) *TableService {
	return &TableService{admin: admin}
}

func (s *TableService) ListTables(ctx context.Context) ([]string, error) {
	return s.admin.ListTables(ctx)
}

func (s *TableService) Describe(ctx context.Context, table string) ([]TableColumn, error) {
	cols, err := s.admin.Columns(ctx, table)
	if err != nil {
		return nil, mapStoreError(err)
	}
	out := make([]TableColumn, 0, len(cols))
	for _, col := range cols {
		out = append(out, TableColumn{
			Name:       col.Name,
			Type:       col.Type,
			NotNull:    col.NotNull == 1,
			PrimaryKey: col.PK > 0,
		})
	}
	return out, nil
}

func (s *TableService) Rows(ctx context.Context, table string, limit, offset int) ([]map[string]any, error) {
	rows, err := s.admin.Rows(ctx, table, limit, offset)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return rows, nil
}

func (s *TableService) InsertRow(ctx context.Context, table string, values map[string]any) error {
	return mapStoreError(s.admin.InsertRow(ctx, table, values))
}

func (s *TableService) UpdateRow(ctx context.Context, table string, key any, values map[string]any) error {
	return mapStoreError(s.admin.UpdateRow(ctx, table, key, values))
}

func (s *TableService) DeleteRow(ctx context.Context, table string, key any) error {
	return mapStoreError(s.admin.DeleteRow(ctx, table, key))
}

// mapStoreError translates storage sentinels into the service error taxonomy
// the transport layer maps onto status codes.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case crerr.Is(err, sqlite.ErrUnknownTable), crerr.Is(err, sqlite.ErrRowNotFound):
		return crerr.Mark(err, ErrNotFound)
	case crerr.Is(err, sqlite.ErrUnknownColumn):
		return crerr.Mark(err, ErrInvalidInput)
	default:
		return err
	}
}
