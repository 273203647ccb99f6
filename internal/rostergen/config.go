// Package rostergen generates synthetic roster CSV files for local
// development and load testing, in the exact layout the loader expects:
// real data rows, a few dirty rows, and spreadsheet-style footer rows.
package rostergen

// Config controls roster generation.
type Config struct {
	// OutputFile is the CSV path to write.
	OutputFile string

	// NumEmployees is the number of clean data rows to generate.
	NumEmployees int

	// DirtyRows is the number of rows with unparsable compensation
	// mixed into the output. The loader is expected to drop them.
	DirtyRows int

	// FooterRows appends TOTAL and AVERAGE summary rows, mimicking a
	// spreadsheet export.
	FooterRows bool

	// IDPrefix is the employee-ID prefix, "E" by default.
	IDPrefix string

	// Seed makes generation reproducible; 0 seeds from the clock.
	Seed int64

	// Verify re-parses the generated file and checks the row accounting.
	Verify bool

	// Verbose enables debug logging.
	Verbose bool
}
