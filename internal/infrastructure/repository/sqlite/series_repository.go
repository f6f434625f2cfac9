package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/cricstats/livestats/internal/domain/series"
)

type SeriesRepository struct {
	db *sqlx.DB
}

func NewSeriesRepository(db *sqlx.DB) *SeriesRepository {
	return &SeriesRepository{db: db}
}

var _ series.Repository = (*SeriesRepository)(nil)

func (r *SeriesRepository) Upsert(ctx context.Context, s series.Series) error {
	row := map[string]any{
		"series_id":     s.SeriesID,
		"name":          s.Name,
		"host_country":  s.HostCountry,
		"format":        s.Format,
		"start_date":    s.StartDate,
		"total_matches": s.TotalMatches,
	}
	return UpsertMany(ctx, r.db, "series", []map[string]any{row}, ConflictIgnore)
}
