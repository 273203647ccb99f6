// Package summary computes cost statistics over a headcount selection.
package summary

import (
	"sort"
	"strconv"

	"github.com/sharzhou/headcount/internal/domain/model"
)

// Stats is the cost summary for one selection. All monetary values are
// whole dollars; average and median truncate toward zero rather than round,
// matching the loader's coercion contract.
type Stats struct {
	Count      int   `json:"count"`
	TotalUSD   int64 `json:"total_usd"`
	AverageUSD int64 `json:"average_usd"`
	MedianUSD  int64 `json:"median_usd"`
}

// Compute recalculates the full summary from scratch. An empty selection is
// a valid state and yields the all-zero Stats, not an error.
func Compute(sel model.Roster) Stats {
	if len(sel) == 0 {
		return Stats{}
	}

	var total int64
	comps := make([]int64, len(sel))
	for i, e := range sel {
		total += e.CompUSD
		comps[i] = e.CompUSD
	}

	return Stats{
		Count:      len(sel),
		TotalUSD:   total,
		AverageUSD: total / int64(len(sel)),
		MedianUSD:  median(comps),
	}
}

// median expects comps to hold at least one value. The caller passes
// selection compensations in sorted-by-comp order already when the selection
// came from the engine, but the function sorts defensively since summary is
// documented as a pure function of any selection.
func median(comps []int64) int64 {
	sort.Slice(comps, func(i, j int) bool { return comps[i] < comps[j] })
	n := len(comps)
	if n%2 == 1 {
		return comps[n/2]
	}
	// Even count: conventional numeric median, truncated to integer.
	return (comps[n/2-1] + comps[n/2]) / 2
}

// FormatUSD renders whole dollars as a currency string with thousands
// separators and no decimals, e.g. 1234567 -> "$1,234,567". The dashboard
// uses it for KPI cards, the table column, and chart tooltips; exports keep
// the raw numeric value.
func FormatUSD(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	if neg {
		return "-$" + string(out)
	}
	return "$" + string(out)
}
