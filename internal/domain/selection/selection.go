// Package selection implements the compensation-prioritized headcount pick.
package selection

import (
	"sort"
	"strings"

	"github.com/sharzhou/headcount/internal/domain/model"
)

// Order is the two-valued prioritization direction.
type Order string

const (
	// LowestFirst sorts ascending by compensation (cost-minimizing scenario).
	LowestFirst Order = "asc"
	// HighestFirst sorts descending by compensation.
	HighestFirst Order = "desc"
)

// ParseOrder maps the user-facing order input to an Order. The empty string
// defaults to LowestFirst, matching the dashboard's initial radio state.
func ParseOrder(s string) (Order, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(LowestFirst):
		return LowestFirst, true
	case string(HighestFirst):
		return HighestFirst, true
	}
	return LowestFirst, false
}

// Select returns the first target rows of the roster sorted by CompUSD in
// the given order. The sort is stable: rows with equal compensation keep
// their roster order regardless of direction, so repeated calls over the
// same inputs are byte-for-byte reproducible. target is clamped to
// [0, len(roster)]; zero yields an empty selection.
//
// The roster itself is never mutated; sorting happens on a copy.
func Select(roster model.Roster, target int, order Order) model.Roster {
	if target < 0 {
		target = 0
	}
	if target > len(roster) {
		target = len(roster)
	}

	sorted := make(model.Roster, len(roster))
	copy(sorted, roster)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == HighestFirst {
			return sorted[i].CompUSD > sorted[j].CompUSD
		}
		return sorted[i].CompUSD < sorted[j].CompUSD
	})

	return sorted[:target]
}
