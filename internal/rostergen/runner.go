package rostergen

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sharzhou/headcount/internal/domain/roster"
	"github.com/sharzhou/headcount/pkg/logger"
)

// File permission constants.
const (
	outputFilePermission = 0o644
)

// Run generates the roster file described by cfg, then optionally verifies
// it by re-parsing through the production loader.
func Run(ctx context.Context, cfg *Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cfg.NumEmployees <= 0 {
		return fmt.Errorf("num employees must be positive, got %d", cfg.NumEmployees)
	}
	if cfg.IDPrefix == "" {
		cfg.IDPrefix = "E"
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // synthetic data, not security-sensitive

	log := logger.Get()
	log.Info(ctx, "generating roster",
		logger.String("runId", uuid.NewString()),
		logger.Int("employees", cfg.NumEmployees),
		logger.Int("dirtyRows", cfg.DirtyRows),
		logger.String("output", cfg.OutputFile),
	)

	rows := generateRows(cfg, rng)

	var total int64
	for _, r := range rows {
		comp, err := strconv.ParseFloat(r.comp, 64)
		if err != nil {
			return fmt.Errorf("generated bad comp %q: %w", r.comp, err)
		}
		total += int64(comp)
	}

	// Interleave dirty rows at random positions.
	for i := 0; i < cfg.DirtyRows; i++ {
		pos := rng.Intn(len(rows) + 1)
		rows = append(rows[:pos], append([]employeeRow{dirtyRow(cfg, i, rng)}, rows[pos:]...)...)
	}

	if cfg.FooterRows {
		rows = append(rows, footerRows(total)...)
	}

	if err := writeCSV(cfg.OutputFile, rows); err != nil {
		return err
	}

	log.Info(ctx, "roster written",
		logger.String("output", cfg.OutputFile),
		logger.Int("rows", len(rows)),
		logger.Int64("seed", seed),
	)

	if cfg.Verify {
		return verify(ctx, cfg)
	}
	return nil
}

// writeCSV renders the rows with the canonical column layout.
func writeCSV(path string, rows []employeeRow) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePermission)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(roster.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		record := []string{r.id, r.name, r.role, r.department, r.location, r.comp}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// verify re-parses the generated file with the production loader and checks
// the row accounting lines up with what was generated.
func verify(ctx context.Context, cfg *Config) error {
	f, err := os.Open(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("open generated file: %w", err)
	}
	defer f.Close()

	clean, report, err := roster.Parse(f, roster.WithIDPrefix(cfg.IDPrefix))
	if err != nil {
		return fmt.Errorf("re-parse generated file: %w", err)
	}

	if len(clean) != cfg.NumEmployees {
		return fmt.Errorf("verification failed: expected %d clean rows, loader kept %d", cfg.NumEmployees, len(clean))
	}
	expectedFooters := 0
	if cfg.FooterRows {
		expectedFooters = 3
	}
	if report.Dropped() != cfg.DirtyRows+expectedFooters {
		return fmt.Errorf("verification failed: expected %d dropped rows, loader dropped %d", cfg.DirtyRows+expectedFooters, report.Dropped())
	}

	logger.Get().Info(ctx, "verification passed",
		logger.Int("cleanRows", len(clean)),
		logger.Int("droppedRows", report.Dropped()),
	)
	return nil
}
