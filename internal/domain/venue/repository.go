package venue

import "context"

type Repository interface {
	// Upsert keeps the first-seen row for a venue id; venues are reference
	// data and later fetches rarely carry better fields.
	Upsert(ctx context.Context, v Venue) error
}
