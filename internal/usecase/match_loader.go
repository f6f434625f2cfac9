package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/cricstats/livestats/external/cricbuzz"
	"github.com/cricstats/livestats/internal/domain/innings"
	"github.com/cricstats/livestats/internal/domain/match"
	"github.com/cricstats/livestats/internal/domain/series"
	"github.com/cricstats/livestats/internal/domain/venue"
	"github.com/cricstats/livestats/internal/platform/logging"
)

// MatchLoader ingests recent matches with their scorecards.
type MatchLoader struct {
	api     CricketAPI
	matches match.Repository
	venues  venue.Repository
	series  series.Repository
	innings innings.Repository
	logger  *logging.Logger
}

func NewMatchLoader(api CricketAPI, matches match.Repository, venues venue.Repository, seriesRepo series.Repository, inningsRepo innings.Repository, logger *logging.Logger) *MatchLoader {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchLoader{
		api:     api,
		matches: matches,
		venues:  venues,
		series:  seriesRepo,
		innings: inningsRepo,
		logger:  logger,
	}
}

// LoadRecent ingests up to limit recently finished or running matches. The
// match row always lands first; a failing scorecard downgrades the innings
// detail, not the match itself.
func (l *MatchLoader) LoadRecent(ctx context.Context, limit int) (*Report, error) {
	if !l.api.Enabled() {
		return nil, ErrDependencyUnavailable
	}

	payload, err := l.api.Matches(ctx, "recent")
	if err != nil {
		if crerr.IsAny(err, cricbuzz.ErrMissingAPIKey, cricbuzz.ErrForbidden) {
			return nil, err
		}
		return nil, crerr.Wrap(err, "fetch recent matches")
	}

	infos := cricbuzz.ExtractMatchInfos(payload)
	if limit > 0 && len(infos) > limit {
		infos = infos[:limit]
	}

	report := &Report{}
	for _, info := range infos {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		m, ok := buildMatch(info)
		if !ok {
			report.add(cricbuzz.LookupString(info, "matchId", "id"), ItemSkipped, "no usable match fields")
			continue
		}

		if err := l.storeMatch(ctx, info, m); err != nil {
			if crerr.IsAny(err, cricbuzz.ErrMissingAPIKey, cricbuzz.ErrForbidden) {
				return report, err
			}
			l.logger.WarnContext(ctx, "match ingestion failed", "match_id", m.MatchID, "error", err)
			report.add(m.MatchID, ItemFailed, err.Error())
			continue
		}
		report.add(m.MatchID, ItemSuccess, "")
	}
	return report, nil
}

func (l *MatchLoader) storeMatch(ctx context.Context, info map[string]any, m match.Match) error {
	if v, ok := buildVenue(info); ok {
		if err := l.venues.Upsert(ctx, v); err != nil {
			return err
		}
	}
	if s, ok := buildSeries(info); ok {
		if err := l.series.Upsert(ctx, s); err != nil {
			return err
		}
	}
	if err := l.matches.Upsert(ctx, m); err != nil {
		return err
	}
	return l.loadScorecard(ctx, m)
}

func (l *MatchLoader) loadScorecard(ctx context.Context, m match.Match) error {
	payload, err := l.api.Scorecard(ctx, m.MatchID)
	if err != nil {
		if crerr.IsAny(err, cricbuzz.ErrMissingAPIKey, cricbuzz.ErrForbidden) {
			return err
		}
		// Upcoming matches have no scorecard yet; the match row stands alone.
		l.logger.DebugContext(ctx, "scorecard unavailable", "match_id", m.MatchID, "error", err)
		return nil
	}

	var batting []innings.BattingEntry
	var bowling []innings.BowlingEntry
	for _, card := range cricbuzz.ExtractInnings(payload) {
		bowlingTeam := otherTeam(m, card.Team)
		for i, record := range card.Batsmen {
			name := cricbuzz.LookupString(record, "batName", "name", "batsmanName", "fullName")
			if name == "" {
				continue
			}
			position := cricbuzz.LookupInt64(record, "batIndex", "position")
			if position <= 0 {
				position = int64(i + 1)
			}
			batting = append(batting, innings.BattingEntry{
				MatchID:    m.MatchID,
				InningsNo:  card.InningsNo,
				Team:       card.Team,
				PlayerID:   cricbuzz.LookupString(record, "batId", "id", "playerId"),
				PlayerName: name,
				Position:   position,
				Runs:       cricbuzz.LookupInt64(record, "runs", "r"),
				Balls:      cricbuzz.LookupInt64(record, "balls", "b"),
				StrikeRate: cricbuzz.LookupFloat(record, "strikeRate", "strkRate", "sr"),
			})
		}
		for _, record := range card.Bowlers {
			name := cricbuzz.LookupString(record, "bowlName", "name", "bowlerName", "fullName")
			if name == "" {
				continue
			}
			overs := cricbuzz.LookupFloat(record, "overs", "o")
			bowling = append(bowling, innings.BowlingEntry{
				MatchID:      m.MatchID,
				InningsNo:    card.InningsNo,
				Team:         bowlingTeam,
				PlayerID:     cricbuzz.LookupString(record, "bowlerId", "bowlId", "id", "playerId"),
				PlayerName:   name,
				Overs:        overs,
				Balls:        innings.OversToBalls(overs),
				RunsConceded: cricbuzz.LookupInt64(record, "runs", "r"),
				Wickets:      cricbuzz.LookupInt64(record, "wickets", "w"),
				Economy:      cricbuzz.LookupFloat(record, "economy", "econ"),
			})
		}
	}
	if len(batting) == 0 && len(bowling) == 0 {
		return nil
	}

	partnerships := innings.BuildPartnerships(batting, innings.PartnershipThreshold)
	return l.innings.ReplaceForMatch(ctx, m.MatchID, batting, bowling, partnerships)
}

// buildMatch flattens one provider matchInfo record. Team references come in
// three shapes and the status string drives the lifecycle bucket and victory
// fields.
func buildMatch(info map[string]any) (match.Match, bool) {
	matchID := cricbuzz.LookupString(info, "matchId", "id")
	if matchID == "" {
		return match.Match{}, false
	}

	m := match.Match{
		MatchID:    matchID,
		SeriesID:   cricbuzz.LookupString(info, "seriesId"),
		SeriesName: cricbuzz.LookupString(info, "seriesName"),
		Format:     cricbuzz.LookupString(info, "matchFormat", "matchType", "format"),
	}

	if name, err := cricbuzz.TeamName(info["team1"]); err == nil {
		m.Team1 = name
	}
	if name, err := cricbuzz.TeamName(info["team2"]); err == nil {
		m.Team2 = name
	}
	if m.Team1 == "" && m.Team2 == "" {
		return match.Match{}, false
	}

	rawStatus := cricbuzz.LookupString(info, "status", "stateTitle", "state")
	m.Status = match.NormalizeStatus(rawStatus)
	if margin, unit, ok := match.ParseVictoryMargin(rawStatus); ok {
		m.VictoryMargin = margin
		m.VictoryType = unit
	}

	// Winner comes only from structured fields; the free-text status string
	// is too ambiguous to name a team from.
	if winner, ok := info["winningTeam"]; ok && winner != nil {
		if name, err := cricbuzz.TeamName(winner); err == nil {
			m.Winner = name
		}
	}
	if m.Winner == "" {
		if cricbuzz.TeamIsWinner(info["team1"]) {
			m.Winner = m.Team1
		} else if cricbuzz.TeamIsWinner(info["team2"]) {
			m.Winner = m.Team2
		}
	}

	if epoch := cricbuzz.LookupInt64(info, "startDate", "startdate", "startDateTime"); epoch > 0 {
		if ts, ok := match.StartTimeFromEpoch(epoch); ok {
			m.StartTime = ts
		}
	}

	if venueInfo, ok := info["venueInfo"].(map[string]any); ok {
		m.Venue = cricbuzz.LookupString(venueInfo, "ground", "name")
		m.City = cricbuzz.LookupString(venueInfo, "city")
		m.VenueCountry = cricbuzz.LookupString(venueInfo, "country")
	}

	if toss, ok := info["tossResults"].(map[string]any); ok {
		m.TossWinner = cricbuzz.LookupString(toss, "tossWinnerName", "tossWinner")
		m.TossDecision = cricbuzz.LookupString(toss, "decision", "tossDecision")
	}

	return m, true
}

func buildVenue(info map[string]any) (venue.Venue, bool) {
	venueInfo, ok := info["venueInfo"].(map[string]any)
	if !ok {
		return venue.Venue{}, false
	}

	v := venue.Venue{
		VenueID:  cricbuzz.LookupString(venueInfo, "id", "venueId"),
		Name:     cricbuzz.LookupString(venueInfo, "ground", "name"),
		City:     cricbuzz.LookupString(venueInfo, "city"),
		Country:  cricbuzz.LookupString(venueInfo, "country"),
		Capacity: cricbuzz.LookupInt64(venueInfo, "capacity"),
	}
	if v.VenueID == "" {
		if v.Name == "" {
			return venue.Venue{}, false
		}
		v.VenueID = v.Name
	}
	return v, true
}

func buildSeries(info map[string]any) (series.Series, bool) {
	s := series.Series{
		SeriesID: cricbuzz.LookupString(info, "seriesId"),
		Name:     cricbuzz.LookupString(info, "seriesName"),
		Format:   cricbuzz.LookupString(info, "matchFormat", "matchType", "format"),
	}
	if s.SeriesID == "" {
		return series.Series{}, false
	}
	return s, true
}

func otherTeam(m match.Match, battingTeam string) string {
	switch battingTeam {
	case m.Team1:
		return m.Team2
	case m.Team2:
		return m.Team1
	default:
		return ""
	}
}
