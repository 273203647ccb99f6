// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"

	"github.com/sharzhou/headcount/internal/domain/selection"
)

// exportFilename is the attachment name browsers save the download as.
const exportFilename = "selected_employees.csv"

// ExportHandler handles CSV download requests.
type ExportHandler struct {
	deps Dependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps Dependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandleGetExport handles GET /api/export?headcount=N&order=asc|desc requests.
// The body is the same selection the scenario endpoint returns, rendered as
// CSV with raw integer compensation values.
func (h *ExportHandler) HandleGetExport(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_export"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	headcount := h.deps.DefaultHeadcount()
	if raw := r.URL.Query().Get("headcount"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_headcount", NewKind(op, ErrBadRequest))
			return
		}
		headcount = n
	}

	order, ok := selection.ParseOrder(r.URL.Query().Get("order"))
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_order", NewKind(op, ErrBadRequest))
		return
	}

	data, err := h.deps.ExportCSV(r.Context(), headcount, order)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
