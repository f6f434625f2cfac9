package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/cricstats/livestats/internal/usecase"
)

type ingestPlayersRequest struct {
	PlayerIDs []string `json:"playerIds" validate:"omitempty,dive,required"`
	Limit     int      `json:"limit" validate:"omitempty,min=1,max=100"`
}

type ingestMatchesRequest struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=100"`
}

func (h *Handler) IngestPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestPlayers")
	defer span.End()

	var req ingestPlayersRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.playerLoader.Load(ctx, req.PlayerIDs, req.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "player ingestion failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportToDTO(report))
}

func (h *Handler) IngestMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestMatches")
	defer span.End()

	var req ingestMatchesRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.matchLoader.LoadRecent(ctx, req.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "match ingestion failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportToDTO(report))
}

// decodeBody reads a JSON request body into dst. An empty body is accepted so
// ingestion endpoints work with bare POSTs.
func decodeBody(r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
