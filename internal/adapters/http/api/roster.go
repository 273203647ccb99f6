// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// RosterHandler handles roster metadata and refresh requests.
type RosterHandler struct {
	deps Dependencies
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(deps Dependencies) *RosterHandler {
	return &RosterHandler{deps: deps}
}

// HandleGetRoster handles GET /api/roster requests. It returns the load
// diagnostics for the cached roster, not the employee rows themselves.
func (h *RosterHandler) HandleGetRoster(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_roster"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	meta, err := h.deps.RosterMeta(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

// HandleRefresh handles POST /api/roster/refresh requests. The reload is a
// no-op when the source file is unchanged.
func (h *RosterHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	const op = "api.refresh_roster"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	if err := h.deps.Refresh(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	meta, err := h.deps.RosterMeta(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, meta)
}
