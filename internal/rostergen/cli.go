package rostergen

import (
	"fmt"
	"os"

	"github.com/sharzhou/headcount/pkg/logger"
)

// SetupLogging initializes the logger for the CLI.
func SetupLogging(verbose bool) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		if err := logger.SetLevelString("debug"); err != nil {
			return fmt.Errorf("failed to set log level: %w", err)
		}
	}
	return nil
}

// ShowHelp prints usage information for the roster generator tool.
func ShowHelp() {
	os.Stdout.WriteString(`Headcount Roster Generator
==========================

Generates a synthetic employee roster CSV in the layout the dashboard
loads: data rows keyed by employee id, optional dirty rows, and
spreadsheet-style footer rows.

Usage:
  go run cmd/gen-roster/main.go [options]

Options:
  -output string
        Output CSV file (default "people_headcount.csv")
  -employees int
        Number of clean employee rows to generate (default 40)
  -dirty int
        Number of rows with unparsable compensation (default 2)
  -footers
        Append TOTAL/AVERAGE footer rows (default true)
  -prefix string
        Employee id prefix (default "E")
  -seed int
        Random seed; 0 seeds from the clock
  -verify
        Re-parse the output with the production loader and check counts
  -url string
        Base URL of a running service; verifies /api/scenario invariants
  -headcount int
        Headcount used for server verification (default 10)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Default roster of 40 employees
  go run cmd/gen-roster/main.go

  # Large reproducible roster, verified after writing
  go run cmd/gen-roster/main.go -employees 500 -seed 42 -verify
`)
}
