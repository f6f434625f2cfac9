package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListTables(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTables")
	defer span.End()

	tables, err := h.tableService.ListTables(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list tables failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tables)
}

func (h *Handler) DescribeTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DescribeTable")
	defer span.End()

	table := strings.TrimSpace(r.PathValue("table"))
	columns, err := h.tableService.Describe(ctx, table)
	if err != nil {
		h.logger.WarnContext(ctx, "describe table failed", "table", table, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, columns)
}

func (h *Handler) ListTableRows(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTableRows")
	defer span.End()

	table := strings.TrimSpace(r.PathValue("table"))
	rows, err := h.tableService.Rows(ctx, table, queryInt(r, "limit"), queryInt(r, "offset"))
	if err != nil {
		h.logger.WarnContext(ctx, "list rows failed", "table", table, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rows)
}

func (h *Handler) InsertTableRow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.InsertTableRow")
	defer span.End()

	table := strings.TrimSpace(r.PathValue("table"))
	var values map[string]any
	if err := decodeBody(r, &values); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.tableService.InsertRow(ctx, table, values); err != nil {
		h.logger.WarnContext(ctx, "insert row failed", "table", table, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]string{"status": "created"})
}

func (h *Handler) UpdateTableRow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTableRow")
	defer span.End()

	table := strings.TrimSpace(r.PathValue("table"))
	key := strings.TrimSpace(r.PathValue("key"))
	var values map[string]any
	if err := decodeBody(r, &values); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.tableService.UpdateRow(ctx, table, key, values); err != nil {
		h.logger.WarnContext(ctx, "update row failed", "table", table, "key", key, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) DeleteTableRow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTableRow")
	defer span.End()

	table := strings.TrimSpace(r.PathValue("table"))
	key := strings.TrimSpace(r.PathValue("key"))
	if err := h.tableService.DeleteRow(ctx, table, key); err != nil {
		h.logger.WarnContext(ctx, "delete row failed", "table", table, "key", key, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
