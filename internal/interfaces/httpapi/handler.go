package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cricstats/livestats/internal/domain/match"
	"github.com/cricstats/livestats/internal/domain/player"
	"github.com/cricstats/livestats/internal/platform/logging"
	"github.com/cricstats/livestats/internal/usecase"
)

type Handler struct {
	statsService *usecase.StatsService
	playerLoader *usecase.PlayerLoader
	matchLoader  *usecase.MatchLoader
	liveService  *usecase.LiveService
	queryService *usecase.QueryService
	tableService *usecase.TableService
	logger       *logging.Logger
	validator    *validator.Validate
}

func NewHandler(
	statsService *usecase.StatsService,
	playerLoader *usecase.PlayerLoader,
	matchLoader *usecase.MatchLoader,
	liveService *usecase.LiveService,
	queryService *usecase.QueryService,
	tableService *usecase.TableService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		statsService: statsService,
		playerLoader: playerLoader,
		matchLoader:  matchLoader,
		liveService:  liveService,
		queryService: queryService,
		tableService: tableService,
		logger:       logger,
		validator:    validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.statsService.Players(ctx, queryInt(r, "limit"))
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	matches, err := h.statsService.Matches(ctx, status, queryInt(r, "limit"))
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "status", status, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// queryInt reads a non-negative integer query parameter, zero when absent or
// malformed.
func queryInt(r *http.Request, name string) int {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

type playerDTO struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Country        string  `json:"country"`
	Role           string  `json:"role"`
	TotalRuns      int64   `json:"totalRuns"`
	BattingAverage float64 `json:"battingAverage"`
	StrikeRate     float64 `json:"strikeRate"`
	TotalWickets   int64   `json:"totalWickets"`
	BowlingAverage float64 `json:"bowlingAverage"`
	EconomyRate    float64 `json:"economyRate"`
}

type matchDTO struct {
	MatchID       string `json:"matchId"`
	SeriesName    string `json:"seriesName"`
	Format        string `json:"format"`
	Team1         string `json:"team1"`
	Team2         string `json:"team2"`
	Venue         string `json:"venue"`
	City          string `json:"city"`
	VenueCountry  string `json:"venueCountry,omitempty"`
	StartTime     string `json:"startTime"`
	Status        string `json:"status"`
	Winner        string `json:"winner,omitempty"`
	VictoryMargin int64  `json:"victoryMargin,omitempty"`
	VictoryType   string `json:"victoryType,omitempty"`
}

type reportDTO struct {
	Succeeded int                  `json:"succeeded"`
	Skipped   int                  `json:"skipped"`
	Failed    int                  `json:"failed"`
	Items     []usecase.ItemResult `json:"items"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:             p.ID,
		Name:           p.Name,
		Country:        p.Country,
		Role:           p.Role,
		TotalRuns:      p.TotalRuns,
		BattingAverage: p.BattingAverage,
		StrikeRate:     p.StrikeRate,
		TotalWickets:   p.TotalWickets,
		BowlingAverage: p.BowlingAverage,
		EconomyRate:    p.EconomyRate,
	}
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		MatchID:       m.MatchID,
		SeriesName:    m.SeriesName,
		Format:        m.Format,
		Team1:         m.Team1,
		Team2:         m.Team2,
		Venue:         m.Venue,
		City:          m.City,
		VenueCountry:  m.VenueCountry,
		StartTime:     m.StartTime,
		Status:        m.Status,
		Winner:        m.Winner,
		VictoryMargin: m.VictoryMargin,
		VictoryType:   m.VictoryType,
	}
}

func reportToDTO(report *usecase.Report) reportDTO {
	return reportDTO{
		Succeeded: report.Succeeded(),
		Skipped:   report.Skipped(),
		Failed:    report.Failed(),
		Items:     report.Items,
	}
}
