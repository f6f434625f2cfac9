package match

import "context"

type Repository interface {
	// Upsert replaces any existing row for the same match id so the latest
	// fetched status and score fields supersede stale ones.
	Upsert(ctx context.Context, m Match) error
	List(ctx context.Context, status string, limit int) ([]Match, error)
}
