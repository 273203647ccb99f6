// Package roster parses delimited roster sources into clean employee rows.
//
// The source file is CSV with a header row and, by convention, a trailing
// "summary statistics" section whose rows share the employee column layout.
// Parsing therefore keeps every field as a string first and cleans in two
// passes: numeric coercion of comp_usd (rows that fail are dropped, not
// errors) and the employee-id prefix predicate (drops the footer rows).
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sharzhou/headcount/internal/domain/model"
)

// defaultIDPrefix marks valid employee rows in the source file.
const defaultIDPrefix = "E"

// Columns is the required header set, in canonical order. The same order is
// used for CSV export so round-tripped files stay diffable.
var Columns = []string{"employee_id", "name", "role", "department", "location", "comp_usd"}

// Report carries per-load diagnostics: how many raw rows were seen and how
// many were dropped, by reason. Dropped rows are an expected property of the
// source format, so they are counted rather than surfaced as errors.
type Report struct {
	TotalRows      int // data rows read, excluding the header
	DroppedBadComp int // comp_usd not numeric or negative
	DroppedBadID   int // employee_id missing the employee prefix
}

// Dropped returns the total number of rows removed during cleaning.
func (r Report) Dropped() int {
	return r.DroppedBadComp + r.DroppedBadID
}

type parser struct {
	idPrefix string
}

// Parse reads a roster CSV and returns the cleaned, ordered roster together
// with a drop report. It fails with ErrRead when the source cannot be
// parsed, ErrMissingColumn when a required column is absent, and
// ErrEmptyRoster when cleaning leaves zero valid rows. Row-level coercion
// failures never produce an error.
func Parse(r io.Reader, opts ...Option) (model.Roster, Report, error) {
	p := &parser{idPrefix: defaultIDPrefix}
	for _, opt := range opts {
		opt(p)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // footer rows may be ragged

	header, err := reader.Read()
	if err != nil {
		return nil, Report{}, fmt.Errorf("%w: %w", ErrRead, err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, Report{}, err
	}

	var (
		roster model.Roster
		report Report
	)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, Report{}, fmt.Errorf("%w: %w", ErrRead, err)
		}
		report.TotalRows++

		id := field(row, idx["employee_id"])
		if !strings.HasPrefix(id, p.idPrefix) {
			report.DroppedBadID++
			continue
		}

		comp, ok := coerceComp(field(row, idx["comp_usd"]))
		if !ok {
			report.DroppedBadComp++
			continue
		}

		roster = append(roster, model.Employee{
			ID:         id,
			Name:       field(row, idx["name"]),
			Role:       field(row, idx["role"]),
			Department: field(row, idx["department"]),
			Location:   field(row, idx["location"]),
			CompUSD:    comp,
		})
	}

	if len(roster) == 0 {
		return nil, report, fmt.Errorf("%w (%d rows dropped)", ErrEmptyRoster, report.Dropped())
	}
	return roster, report, nil
}

// columnIndex maps required column names to their positions in the header.
func columnIndex(header []string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.ToLower(strings.TrimSpace(h))] = i
	}
	idx := make(map[string]int, len(Columns))
	for _, col := range Columns {
		i, ok := pos[col]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
		idx[col] = i
	}
	return idx, nil
}

// coerceComp parses a compensation cell. Fractional values truncate toward
// zero (a load-time contract, relied on by downstream summary math);
// negative and non-numeric values are rejected.
func coerceComp(s string) (int64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return int64(f), true
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
