package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/cricstats/livestats/internal/domain/venue"
)

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

var _ venue.Repository = (*VenueRepository)(nil)

func (r *VenueRepository) Upsert(ctx context.Context, v venue.Venue) error {
	row := map[string]any{
		"venue_id": v.VenueID,
		"name":     v.Name,
		"city":     v.City,
		"country":  v.Country,
		"capacity": v.Capacity,
	}
	return UpsertMany(ctx, r.db, "venues", []map[string]any{row}, ConflictIgnore)
}
