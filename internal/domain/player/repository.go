package player

import "context"

type Repository interface {
	// Upsert writes the aggregate row, replacing an existing (name, country)
	// entry so the latest fetch wins.
	Upsert(ctx context.Context, p Player) error
	// UpsertFormatStats writes per-format rows, replacing existing
	// (player, format) entries.
	UpsertFormatStats(ctx context.Context, rows []FormatStats) error
	List(ctx context.Context, limit int) ([]Player, error)
}
