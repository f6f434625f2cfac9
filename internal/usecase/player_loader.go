package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/cricstats/livestats/external/cricbuzz"
	"github.com/cricstats/livestats/internal/domain/player"
	"github.com/cricstats/livestats/internal/platform/logging"
)

// bootstrapPlayers keeps ingestion useful when the trending feed is down or
// empty: a handful of well-known player ids that exist on every provider
// deployment.
var bootstrapPlayers = []cricbuzz.PlayerRef{
	{ID: "8733", Name: "KL Rahul", Country: "India"},
	{ID: "2258", Name: "Jos Buttler", Country: "England"},
	{ID: "10738", Name: "Rashid Khan", Country: "Afghanistan"},
	{ID: "7825", Name: "Faf du Plessis", Country: "South Africa"},
}

// PlayerLoader ingests player career figures from the provider into the
// store.
type PlayerLoader struct {
	api     CricketAPI
	players player.Repository
	logger  *logging.Logger
}

func NewPlayerLoader(api CricketAPI, players player.Repository, logger *logging.Logger) *PlayerLoader {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerLoader{api: api, players: players, logger: logger}
}

// Load ingests the given player ids, or the provider's trending list when ids
// is empty, bounded by limit. Per-player failures are recorded in the report
// and never abort the run; authentication failures do, since every further
// call would fail the same way.
func (l *PlayerLoader) Load(ctx context.Context, ids []string, limit int) (*Report, error) {
	if !l.api.Enabled() {
		return nil, ErrDependencyUnavailable
	}

	refs := l.resolveRefs(ctx, ids)
	if limit > 0 && len(refs) > limit {
		refs = refs[:limit]
	}

	report := &Report{}
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := l.loadOne(ctx, ref); err != nil {
			if crerr.IsAny(err, cricbuzz.ErrMissingAPIKey, cricbuzz.ErrForbidden) {
				return report, err
			}
			l.logger.WarnContext(ctx, "player ingestion failed", "player_id", ref.ID, "error", err)
			report.add(ref.ID, ItemFailed, err.Error())
			continue
		}
		report.add(ref.ID, ItemSuccess, "")
	}
	return report, nil
}

func (l *PlayerLoader) resolveRefs(ctx context.Context, ids []string) []cricbuzz.PlayerRef {
	if len(ids) > 0 {
		known := make(map[string]cricbuzz.PlayerRef, len(bootstrapPlayers))
		for _, ref := range bootstrapPlayers {
			known[ref.ID] = ref
		}
		refs := make([]cricbuzz.PlayerRef, 0, len(ids))
		for _, id := range ids {
			if id == "" {
				continue
			}
			if ref, ok := known[id]; ok {
				refs = append(refs, ref)
				continue
			}
			refs = append(refs, cricbuzz.PlayerRef{ID: id, Name: "Player " + id})
		}
		return refs
	}

	refs, err := l.api.TrendingPlayers(ctx)
	if err != nil || len(refs) == 0 {
		l.logger.WarnContext(ctx, "trending players unavailable, using bootstrap list", "error", err)
		return bootstrapPlayers
	}
	return refs
}

// loadOne fetches batting and bowling summaries independently. A missing
// summary is normal for specialists, so either fetch may fail without sinking
// the player; only authentication errors propagate.
func (l *PlayerLoader) loadOne(ctx context.Context, ref cricbuzz.PlayerRef) error {
	var batGrid, bowlGrid cricbuzz.StatsGrid

	batPayload, batErr := l.api.PlayerBatting(ctx, ref.ID)
	if batErr != nil {
		if crerr.IsAny(batErr, cricbuzz.ErrMissingAPIKey, cricbuzz.ErrForbidden) {
			return batErr
		}
		l.logger.DebugContext(ctx, "no batting summary", "player_id", ref.ID, "error", batErr)
	} else {
		batGrid = cricbuzz.ParseStatsGrid(batPayload)
	}

	bowlPayload, bowlErr := l.api.PlayerBowling(ctx, ref.ID)
	if bowlErr != nil {
		if crerr.IsAny(bowlErr, cricbuzz.ErrMissingAPIKey, cricbuzz.ErrForbidden) {
			return bowlErr
		}
		l.logger.DebugContext(ctx, "no bowling summary", "player_id", ref.ID, "error", bowlErr)
	} else {
		bowlGrid = cricbuzz.ParseStatsGrid(bowlPayload)
	}

	if batErr != nil && bowlErr != nil {
		return crerr.CombineErrors(batErr, bowlErr)
	}

	p := buildPlayer(ref, batGrid, bowlGrid)
	if err := l.players.Upsert(ctx, p); err != nil {
		return err
	}

	stats := buildFormatStats(ref.Name, batGrid, bowlGrid)
	if err := l.players.UpsertFormatStats(ctx, stats); err != nil {
		return err
	}
	return nil
}

func buildPlayer(ref cricbuzz.PlayerRef, batGrid, bowlGrid cricbuzz.StatsGrid) player.Player {
	totalRuns := gridInt(batGrid, "Runs")
	totalWickets := gridInt(bowlGrid, "Wickets")

	return player.Player{
		Name:           ref.Name,
		Country:        ref.Country,
		Role:           player.ClassifyRole(totalRuns, totalWickets),
		TotalRuns:      totalRuns,
		BattingAverage: gridFloat(batGrid, "Average", "Avg"),
		StrikeRate:     gridFloat(batGrid, "SR", "Strike Rate"),
		TotalWickets:   totalWickets,
		BowlingAverage: gridFloat(bowlGrid, "Average", "Avg"),
		EconomyRate:    gridFloat(bowlGrid, "Economy", "Eco"),
	}
}

// buildFormatStats walks every format column present in either grid and emits
// one row per format.
func buildFormatStats(playerName string, batGrid, bowlGrid cricbuzz.StatsGrid) []player.FormatStats {
	formats := batGrid.Formats()
	seen := make(map[string]bool, len(formats))
	for _, f := range formats {
		seen[f] = true
	}
	for _, f := range bowlGrid.Formats() {
		if !seen[f] {
			formats = append(formats, f)
			seen[f] = true
		}
	}

	out := make([]player.FormatStats, 0, len(formats))
	for _, format := range formats {
		batCol := batGrid.ColumnForFormat(format)
		bowlCol := bowlGrid.ColumnForFormat(format)

		row := player.FormatStats{
			PlayerName:     playerName,
			Format:         format,
			Matches:        columnInt(batGrid, batCol, "Matches"),
			Runs:           columnInt(batGrid, batCol, "Runs"),
			Average:        columnFloat(batGrid, batCol, "Average", "Avg"),
			StrikeRate:     columnFloat(batGrid, batCol, "SR", "Strike Rate"),
			Hundreds:       columnInt(batGrid, batCol, "100s", "Hundreds"),
			Fifties:        columnInt(batGrid, batCol, "50s", "Fifties"),
			Wickets:        columnInt(bowlGrid, bowlCol, "Wickets"),
			BowlingAverage: columnFloat(bowlGrid, bowlCol, "Average", "Avg"),
			Economy:        columnFloat(bowlGrid, bowlCol, "Economy", "Eco"),
		}
		if row.Matches == 0 {
			row.Matches = columnInt(bowlGrid, bowlCol, "Matches")
		}
		out = append(out, row)
	}
	return out
}

func gridInt(grid cricbuzz.StatsGrid, metrics ...string) int64 {
	for _, metric := range metrics {
		if n, ok := cricbuzz.ParseInt(grid.Metric(metric)); ok {
			return n
		}
	}
	return 0
}

func gridFloat(grid cricbuzz.StatsGrid, metrics ...string) float64 {
	for _, metric := range metrics {
		if f, ok := cricbuzz.ParseNumber(grid.Metric(metric)); ok {
			return f
		}
	}
	return 0
}

func columnInt(grid cricbuzz.StatsGrid, col int, metrics ...string) int64 {
	for _, metric := range metrics {
		if n, ok := cricbuzz.ParseInt(grid.MetricForColumn(metric, col)); ok {
			return n
		}
	}
	return 0
}

func columnFloat(grid cricbuzz.StatsGrid, col int, metrics ...string) float64 {
	for _, metric := range metrics {
		if f, ok := cricbuzz.ParseNumber(grid.MetricForColumn(metric, col)); ok {
			return f
		}
	}
	return 0
}
