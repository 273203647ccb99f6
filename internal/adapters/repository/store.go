// Package repository defines the roster store interface and errors.
package repository

import (
	"context"
	"time"

	"github.com/sharzhou/headcount/internal/domain/model"
)

// Meta describes the currently cached roster.
type Meta struct {
	Source         string    `json:"source"`          // roster file path
	TotalEmployees int       `json:"total_employees"` // rows in the clean roster
	LoadedAt       time.Time `json:"loaded_at"`       // when the cache was last (re)populated
	RowsRead       int       `json:"rows_read"`       // raw data rows in the source
	RowsDropped    int       `json:"rows_dropped"`    // rows removed during cleaning
	DroppedBadComp int       `json:"dropped_bad_comp"`
	DroppedBadID   int       `json:"dropped_bad_id"`
}

// Store provides read access to the cached roster state.
//
// Implementations follow a populate-once-then-freeze policy: the roster is
// parsed lazily on first access, cached, and never mutated afterwards.
// Reads must be safe for concurrent use; re-parsing happens only when the
// source identity changes.
type Store interface {
	// Roster returns the cached clean roster, loading it if needed.
	// Load failures surface verbatim and leave the store usable, so a
	// later call can retry against a fixed source.
	Roster(ctx context.Context) (model.Roster, error)

	// Meta returns load diagnostics for the cached roster, loading it
	// if needed.
	Meta(ctx context.Context) (Meta, error)

	// Refresh re-checks the source fingerprint and reloads when the
	// file changed.
	Refresh(ctx context.Context) error
}
