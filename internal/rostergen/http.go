package rostergen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sharzhou/headcount/internal/domain/types"
	"github.com/sharzhou/headcount/pkg/logger"
)

// Default HTTP client settings for server verification.
const (
	defaultHTTPTimeout = 30 * time.Second
)

// VerifyServer checks a running dashboard service end to end: it queries
// /api/scenario in both directions and validates the selection invariants
// against the scenario payload itself.
func VerifyServer(ctx context.Context, baseURL string, headcount int) error {
	client := &http.Client{Timeout: defaultHTTPTimeout}

	asc, err := fetchScenario(ctx, client, baseURL, headcount, "asc")
	if err != nil {
		return err
	}
	desc, err := fetchScenario(ctx, client, baseURL, headcount, "desc")
	if err != nil {
		return err
	}

	for _, sc := range []*types.Scenario{asc, desc} {
		if err := checkScenario(sc); err != nil {
			return err
		}
	}

	// Opposite directions over the same roster select from opposite ends,
	// so the cheapest ascending pick can never out-earn the cheapest
	// descending pick.
	if len(asc.Rows) > 0 && len(desc.Rows) > 0 {
		if asc.Rows[0].CompUSD > desc.Rows[0].CompUSD {
			return fmt.Errorf("server verification failed: asc selection starts above desc selection (%d > %d)",
				asc.Rows[0].CompUSD, desc.Rows[0].CompUSD)
		}
	}

	logger.Get().Info(ctx, "server verification passed",
		logger.String("url", baseURL),
		logger.Int("headcount", asc.Headcount),
		logger.Int("rosterSize", asc.RosterSize),
	)
	return nil
}

// fetchScenario queries /api/scenario and decodes the payload.
func fetchScenario(ctx context.Context, client *http.Client, baseURL string, headcount int, order string) (*types.Scenario, error) {
	url := fmt.Sprintf("%s/api/scenario?headcount=%d&order=%s", baseURL, headcount, order)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build scenario request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch scenario: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scenario request returned status %d", resp.StatusCode)
	}

	var sc types.Scenario
	if err := json.NewDecoder(resp.Body).Decode(&sc); err != nil {
		return nil, fmt.Errorf("decode scenario payload: %w", err)
	}
	return &sc, nil
}

// checkScenario validates the invariants every scenario payload must hold.
func checkScenario(sc *types.Scenario) error {
	expected := sc.Requested
	if expected > sc.RosterSize {
		expected = sc.RosterSize
	}
	if expected < 0 {
		expected = 0
	}
	if sc.Headcount != expected || len(sc.Rows) != expected {
		return fmt.Errorf("server verification failed: requested %d of %d, got headcount %d with %d rows",
			sc.Requested, sc.RosterSize, sc.Headcount, len(sc.Rows))
	}

	var total int64
	for i, row := range sc.Rows {
		total += row.CompUSD
		if i == 0 {
			continue
		}
		prev, cur := sc.Rows[i-1].CompUSD, row.CompUSD
		if sc.Order == "desc" {
			prev, cur = cur, prev
		}
		if prev > cur {
			return fmt.Errorf("server verification failed: rows not sorted %s at index %d", sc.Order, i)
		}
	}

	if sc.Stats.Count != len(sc.Rows) {
		return fmt.Errorf("server verification failed: stats count %d does not match %d rows", sc.Stats.Count, len(sc.Rows))
	}
	if sc.Stats.TotalUSD != total {
		return fmt.Errorf("server verification failed: stats total %d does not match row sum %d", sc.Stats.TotalUSD, total)
	}
	if len(sc.Rows) > 0 && sc.Stats.AverageUSD != total/int64(len(sc.Rows)) {
		return fmt.Errorf("server verification failed: average %d is not the truncated mean of %d/%d",
			sc.Stats.AverageUSD, total, len(sc.Rows))
	}
	return nil
}
