// Package chart builds the bar-chart payload rendered by the dashboard.
package chart

import (
	"sort"
	"strings"

	"github.com/sharzhou/headcount/internal/domain/model"
	"github.com/sharzhou/headcount/internal/domain/summary"
)

// Accent is the cosmetic color choice exposed by the dashboard. It has no
// semantic effect on selection or summary.
type Accent string

const (
	AccentTeal   Accent = "teal"
	AccentIndigo Accent = "indigo"
	AccentPurple Accent = "purple"
)

// accentColors maps accents to their hex values. Unknown accents fall back
// to teal, the dashboard default.
var accentColors = map[Accent]string{
	AccentTeal:   "#0d9488",
	AccentIndigo: "#3730a3",
	AccentPurple: "#7c3aed",
}

// ParseAccent normalizes the user-facing accent input. Unknown values fall
// back to teal rather than erroring; the accent is purely cosmetic.
func ParseAccent(s string) Accent {
	a := Accent(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := accentColors[a]; ok {
		return a
	}
	return AccentTeal
}

// Color returns the hex color for the accent.
func (a Accent) Color() string {
	if c, ok := accentColors[a]; ok {
		return c
	}
	return accentColors[AccentTeal]
}

// Point is one horizontal bar: an employee's name against their
// compensation, with a preformatted currency tooltip.
type Point struct {
	Label   string `json:"label"`
	Value   int64  `json:"value"`
	Tooltip string `json:"tooltip"`
}

// Config is the chart payload handed to the dashboard renderer.
type Config struct {
	Kind   string  `json:"kind"` // always "hbar"
	Title  string  `json:"title"`
	Color  string  `json:"color"`
	Points []Point `json:"points"` // sorted descending by value
}

// BuildBar produces the compensation breakdown chart for a selection:
// one bar per employee, sorted descending by compensation. Ties keep the
// selection's order so the chart is as reproducible as the selection
// itself. An empty selection yields nil and the renderer hides the chart.
func BuildBar(sel model.Roster, accent Accent) *Config {
	if len(sel) == 0 {
		return nil
	}

	bars := make(model.Roster, len(sel))
	copy(bars, sel)
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].CompUSD > bars[j].CompUSD })

	points := make([]Point, len(bars))
	for i, e := range bars {
		points[i] = Point{
			Label:   e.Name,
			Value:   e.CompUSD,
			Tooltip: e.Name + ": " + summary.FormatUSD(e.CompUSD),
		}
	}

	return &Config{
		Kind:   "hbar",
		Title:  "Compensation breakdown",
		Color:  accent.Color(),
		Points: points,
	}
}
