package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) LiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LiveMatches")
	defer span.End()

	state := strings.TrimSpace(r.PathValue("state"))
	payload, err := h.liveService.MatchesByState(ctx, state)
	if err != nil {
		h.logger.WarnContext(ctx, "live matches failed", "state", state, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) LiveMatchInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LiveMatchInfo")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	payload, err := h.liveService.MatchInfo(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "live match info failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) LiveScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LiveScorecard")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	payload, err := h.liveService.Scorecard(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "live scorecard failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) LiveRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LiveRankings")
	defer span.End()

	category := strings.TrimSpace(r.PathValue("category"))
	format := strings.TrimSpace(r.URL.Query().Get("format"))
	payload, err := h.liveService.Rankings(ctx, category, format)
	if err != nil {
		h.logger.WarnContext(ctx, "live rankings failed", "category", category, "format", format, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) LiveCommentary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LiveCommentary")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	payload, err := h.liveService.Commentary(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "live commentary failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}
