// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sharzhou/headcount/internal/adapters/repository"
	"github.com/sharzhou/headcount/internal/domain/chart"
	"github.com/sharzhou/headcount/internal/domain/selection"
	"github.com/sharzhou/headcount/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Scenario computes the dashboard payload for a headcount selection.
	Scenario(ctx context.Context, headcount int, order selection.Order, accent chart.Accent) (Scenario, error)

	// ExportCSV renders the selection as a downloadable CSV document.
	ExportCSV(ctx context.Context, headcount int, order selection.Order) ([]byte, error)

	// RosterMeta exposes load diagnostics for the cached roster.
	RosterMeta(ctx context.Context) (repository.Meta, error)

	// Refresh reloads the roster when the source file changed.
	Refresh(ctx context.Context) error

	// DefaultHeadcount is used when a request omits the headcount.
	DefaultHeadcount() int
}

// Scenario mirrors the read shape returned by scenario queries.
type Scenario = types.Scenario

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	scenarioHandler *ScenarioHandler
	exportHandler   *ExportHandler
	rosterHandler   *RosterHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		scenarioHandler: NewScenarioHandler(deps),
		exportHandler:   NewExportHandler(deps),
		rosterHandler:   NewRosterHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/scenario", RequestIDMiddleware(MetricsMiddleware(s.scenarioHandler.HandleGetScenario, "scenario")))
	mux.HandleFunc("/api/export", RequestIDMiddleware(MetricsMiddleware(s.exportHandler.HandleGetExport, "export")))
	mux.HandleFunc("/api/roster", RequestIDMiddleware(MetricsMiddleware(s.rosterHandler.HandleGetRoster, "roster")))
	mux.HandleFunc("/api/roster/refresh", RequestIDMiddleware(MetricsMiddleware(s.rosterHandler.HandleRefresh, "roster_refresh")))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
