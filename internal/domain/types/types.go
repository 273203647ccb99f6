// Package types contains read shapes shared between the service and the API.
package types

import (
	"github.com/sharzhou/headcount/internal/domain/chart"
	"github.com/sharzhou/headcount/internal/domain/model"
	"github.com/sharzhou/headcount/internal/domain/summary"
)

// Row mirrors one selected employee as returned by scenario queries.
// CompUSD is the raw value used for export and charting; CompDisplay is the
// currency-formatted string shown in the table.
type Row struct {
	EmployeeID  string `json:"employee_id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	CompUSD     int64  `json:"comp_usd"`
	CompDisplay string `json:"comp_display"`
}

// Scenario is the full payload for one headcount scenario: the selection,
// its summary stats, and the chart built from it. Headcount is the
// effective selection size after clamping to the roster.
type Scenario struct {
	Headcount  int           `json:"headcount"`
	Requested  int           `json:"requested"`
	Order      string        `json:"order"`
	Accent     string        `json:"accent"`
	RosterSize int           `json:"roster_size"`
	Rows       []Row         `json:"rows"`
	Stats      summary.Stats `json:"stats"`
	Chart      *chart.Config `json:"chart,omitempty"`
}

// RowsFromRoster converts a selection into API rows, preserving order.
func RowsFromRoster(sel model.Roster) []Row {
	rows := make([]Row, len(sel))
	for i, e := range sel {
		rows[i] = Row{
			EmployeeID:  e.ID,
			Name:        e.Name,
			Role:        e.Role,
			Department:  e.Department,
			Location:    e.Location,
			CompUSD:     e.CompUSD,
			CompDisplay: summary.FormatUSD(e.CompUSD),
		}
	}
	return rows
}
