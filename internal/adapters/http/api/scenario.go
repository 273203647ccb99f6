// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"

	"github.com/sharzhou/headcount/internal/domain/chart"
	"github.com/sharzhou/headcount/internal/domain/selection"
)

// ScenarioHandler handles headcount scenario requests.
type ScenarioHandler struct {
	deps Dependencies
}

// NewScenarioHandler creates a new scenario handler.
func NewScenarioHandler(deps Dependencies) *ScenarioHandler {
	return &ScenarioHandler{deps: deps}
}

// HandleGetScenario handles GET /api/scenario?headcount=N&order=asc|desc&accent=teal requests.
// An omitted headcount falls back to the service default; an out-of-range
// headcount is clamped downstream rather than rejected. Order must parse,
// accent falls back to teal.
func (h *ScenarioHandler) HandleGetScenario(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_scenario"
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

	accent := chart.ParseAccent(r.URL.Query().Get("accent"))

	sc, err := h.deps.Scenario(r.Context(), headcount, order, accent)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, sc)
}
