// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"sync"
	"time"

	repository "github.com/sharzhou/headcount/internal/adapters/repository"
	"github.com/sharzhou/headcount/internal/domain/chart"
	"github.com/sharzhou/headcount/internal/domain/roster"
	"github.com/sharzhou/headcount/internal/domain/selection"
	"github.com/sharzhou/headcount/internal/domain/summary"
	"github.com/sharzhou/headcount/internal/domain/types"
	"github.com/sharzhou/headcount/pkg/logger"
	"github.com/sharzhou/headcount/pkg/metrics"
)

// ExportFilename is the attachment name used for scenario CSV downloads.
const ExportFilename = "selected_employees.csv"

// Service implements the API dependencies for the headcount dashboard.
type Service struct {
	mu sync.RWMutex

	// Core components
	store repository.Store

	// Configuration
	rosterPath       string
	idPrefix         string
	defaultHeadcount int
	maxExportRows    int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithRosterPath sets the roster CSV file path.
func WithRosterPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.rosterPath = path
		}
	}
}

// WithIDPrefix sets the employee-ID prefix that keeps data rows.
func WithIDPrefix(prefix string) Option {
	return func(s *Service) {
		if prefix != "" {
			s.idPrefix = prefix
		}
	}
}

// WithDefaultHeadcount sets the headcount used when a request omits it.
func WithDefaultHeadcount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.defaultHeadcount = n
		}
	}
}

// WithMaxExportRows caps the number of rows a CSV export may contain.
func WithMaxExportRows(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxExportRows = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		idPrefix:         "E",
		defaultHeadcount: 10,
		maxExportRows:    10000,
		logger:           nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the roster store and warms the cache.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting headcount service...")

	store, err := repository.NewFileStore(s.rosterPath, repository.WithIDPrefix(s.idPrefix))
	if err != nil {
		return fmt.Errorf("create roster store: %w", err)
	}
	s.store = store

	// Warm the cache so startup fails fast on a broken roster file.
	meta, err := s.store.Meta(ctx)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	s.started = true
	s.logger.Info(ctx, "headcount service started",
		logger.String("roster", meta.Source),
		logger.Int("employees", meta.TotalEmployees),
		logger.Int("rowsDropped", meta.RowsDropped),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping headcount service...")
	s.started = false
	s.logger.Info(context.Background(), "headcount service stopped")
}

// Scenario computes the full dashboard payload for a headcount selection.
// The requested headcount is clamped to the roster size; order and accent
// arrive pre-parsed by the API layer.
func (s *Service) Scenario(ctx context.Context, headcount int, order selection.Order, accent chart.Accent) (types.Scenario, error) {
	start := time.Now()

	r, err := s.store.Roster(ctx)
	if err != nil {
		metrics.RecordScenarioError()
		return types.Scenario{}, err
	}

	sel := selection.Select(r, headcount, order)
	stats := summary.Compute(sel)

	result := types.Scenario{
		Headcount:  len(sel),
		Requested:  headcount,
		Order:      string(order),
		Accent:     string(accent),
		RosterSize: len(r),
		Rows:       types.RowsFromRoster(sel),
		Stats:      stats,
		Chart:      chart.BuildBar(sel, accent),
	}

	metrics.RecordScenarioComputed()
	metrics.RecordScenarioDuration(float64(time.Since(start).Microseconds()) / 1000.0)
	metrics.UpdateScenarioHeadcount(len(sel))

	s.logger.Debug(ctx, "scenario computed",
		logger.Int("requested", headcount),
		logger.Int("selected", len(sel)),
		logger.String("order", string(order)),
	)

	return result, nil
}

// ExportCSV renders the current selection as a CSV document. Compensation
// is exported as the raw truncated integer, not the display string, so the
// file round-trips through the loader.
func (s *Service) ExportCSV(ctx context.Context, headcount int, order selection.Order) ([]byte, error) {
	r, err := s.store.Roster(ctx)
	if err != nil {
		return nil, err
	}

	sel := selection.Select(r, headcount, order)
	if len(sel) > s.maxExportRows {
		sel = sel[:s.maxExportRows]
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(roster.Columns); err != nil {
		return nil, fmt.Errorf("write export header: %w", err)
	}
	for _, e := range sel {
		record := []string{e.ID, e.Name, e.Role, e.Department, e.Location, strconv.FormatInt(e.CompUSD, 10)}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write export row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush export: %w", err)
	}

	metrics.RecordExportServed(len(sel))
	return buf.Bytes(), nil
}

// RosterMeta returns load diagnostics for the cached roster.
func (s *Service) RosterMeta(ctx context.Context) (repository.Meta, error) {
	return s.store.Meta(ctx)
}

// Refresh reloads the roster if the source file changed on disk.
func (s *Service) Refresh(ctx context.Context) error {
	return s.store.Refresh(ctx)
}

// DefaultHeadcount returns the headcount used when a request omits it.
func (s *Service) DefaultHeadcount() int {
	return s.defaultHeadcount
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":          s.started,
		"rosterPath":       s.rosterPath,
		"defaultHeadcount": s.defaultHeadcount,
		"maxExportRows":    s.maxExportRows,
	}

	if s.started {
		meta, err := s.store.Meta(ctx)
		if err == nil {
			stats["totalEmployees"] = meta.TotalEmployees
			stats["rowsRead"] = meta.RowsRead
			stats["rowsDropped"] = meta.RowsDropped
			stats["loadedAt"] = meta.LoadedAt

			// Update metrics
			metrics.UpdateRosterEmployees(meta.TotalEmployees)
		}
	}

	return stats
}
