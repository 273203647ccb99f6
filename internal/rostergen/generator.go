package rostergen

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Compensation bands in whole dollars. Generated values carry cents so the
// loader's truncation path gets exercised.
const (
	bandJuniorMin    = 45_000
	bandJuniorRange  = 30_000
	bandSeniorMin    = 90_000
	bandSeniorRange  = 60_000
	bandStaffMin     = 140_000
	bandStaffRange   = 80_000
	bandSupportMin   = 35_000
	bandSupportRange = 25_000
)

var firstNames = []string{
	"Ada", "Sam", "Lin", "Kai", "Noor", "Ravi", "Mia", "Omar",
	"Iris", "Leo", "Tara", "Hugo", "Nina", "Eli", "Zoe", "Max",
}

var lastNames = []string{
	"Ahmed", "Brown", "Chen", "Diaz", "Evans", "Fischer", "Garcia",
	"Huang", "Ivanov", "Jones", "Kim", "Lopez", "Moreau", "Novak",
}

var roles = []string{
	"Engineer", "Senior Engineer", "Staff Engineer", "Designer",
	"Product Manager", "Data Analyst", "Support Specialist", "Manager",
}

var departments = []string{
	"Platform", "Product", "Data", "Finance", "Support", "Operations",
}

var locations = []string{
	"Remote", "NYC", "SF", "Berlin", "London", "Toronto", "Singapore",
}

// employeeRow is one generated CSV record.
type employeeRow struct {
	id         string
	name       string
	role       string
	department string
	location   string
	comp       string
}

// generateRows produces the clean data rows.
func generateRows(cfg *Config, rng *rand.Rand) []employeeRow {
	rows := make([]employeeRow, cfg.NumEmployees)
	for i := range rows {
		role := roles[rng.Intn(len(roles))]
		rows[i] = employeeRow{
			id:         fmt.Sprintf("%s%03d", cfg.IDPrefix, i+1),
			name:       firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
			role:       role,
			department: departments[rng.Intn(len(departments))],
			location:   locations[rng.Intn(len(locations))],
			comp:       compForRole(role, rng),
		}
	}
	return rows
}

// compForRole draws a compensation value from the band matching the role,
// formatted with cents.
func compForRole(role string, rng *rand.Rand) string {
	var min, span int
	switch role {
	case "Staff Engineer", "Manager":
		min, span = bandStaffMin, bandStaffRange
	case "Senior Engineer", "Product Manager":
		min, span = bandSeniorMin, bandSeniorRange
	case "Support Specialist":
		min, span = bandSupportMin, bandSupportRange
	default:
		min, span = bandJuniorMin, bandJuniorRange
	}
	dollars := min + rng.Intn(span)
	cents := rng.Intn(100)
	return strconv.Itoa(dollars) + "." + fmt.Sprintf("%02d", cents)
}

// dirtyComps are compensation values the loader must reject.
var dirtyComps = []string{"", "N/A", "TBD", "confidential", "-1000"}

// dirtyRow produces a row with a valid id but unparsable compensation.
func dirtyRow(cfg *Config, index int, rng *rand.Rand) employeeRow {
	return employeeRow{
		id:         fmt.Sprintf("%s9%02d", cfg.IDPrefix, index+1),
		name:       firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
		role:       roles[rng.Intn(len(roles))],
		department: departments[rng.Intn(len(departments))],
		location:   locations[rng.Intn(len(locations))],
		comp:       dirtyComps[rng.Intn(len(dirtyComps))],
	}
}

// footerRows mimic the summary lines a spreadsheet export appends. Their
// ids do not carry the employee prefix, so the loader drops them.
func footerRows(total int64) []employeeRow {
	return []employeeRow{
		{id: "TOTAL", comp: strconv.FormatInt(total, 10)},
		{id: "AVERAGE", comp: ""},
		{id: "Summary Statistics"},
	}
}
