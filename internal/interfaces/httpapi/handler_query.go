package httpapi

import (
	"net/http"
	"strings"
)

type customQueryRequest struct {
	SQL string `json:"sql" validate:"required"`
}

func (h *Handler) ListQueries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListQueries")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.queryService.Catalog())
}

func (h *Handler) RunCannedQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunCannedQuery")
	defer span.End()

	queryID := strings.TrimSpace(r.PathValue("queryID"))
	result, err := h.queryService.RunCanned(ctx, queryID)
	if err != nil {
		h.logger.WarnContext(ctx, "canned query failed", "query_id", queryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunCustomQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunCustomQuery")
	defer span.End()

	var req customQueryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.queryService.RunCustom(ctx, req.SQL)
	if err != nil {
		h.logger.WarnContext(ctx, "custom query failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
