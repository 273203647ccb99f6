package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sharzhou/headcount/internal/domain/model"
	"github.com/sharzhou/headcount/internal/domain/roster"
	"github.com/sharzhou/headcount/pkg/metrics"
)

// fingerprint identifies a roster source snapshot. Two reads of the same
// path with equal fingerprints are guaranteed to parse identically, so the
// cache can serve the frozen roster without touching the file again.
type fingerprint struct {
	modTime time.Time
	size    int64
}

// FileStore caches the parsed roster of a single CSV file. The roster is
// parsed lazily on first access and frozen; subsequent reads return the
// cached slice. Refresh re-stats the file and reloads only when the
// fingerprint changed.
type FileStore struct {
	path     string
	idPrefix string

	mu     sync.RWMutex
	loaded bool
	fp     fingerprint
	roster model.Roster
	meta   Meta
}

// NewFileStore creates a store over the CSV at path. The file is not
// touched until the first read.
func NewFileStore(path string, opts ...Option) (*FileStore, error) {
	if path == "" {
		return nil, ErrNoSource
	}
	s := &FileStore{path: path, idPrefix: "E"}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Roster returns the cached clean roster, loading it on first use.
// Callers must not mutate the returned slice.
func (s *FileStore) Roster(ctx context.Context) (model.Roster, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster, nil
}

// Meta returns load diagnostics, loading the roster on first use.
func (s *FileStore) Meta(ctx context.Context) (Meta, error) {
	if err := s.ensure(ctx); err != nil {
		return Meta{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta, nil
}

// Refresh re-checks the source fingerprint and reloads the roster when the
// file changed. A no-op when the fingerprint is unchanged.
func (s *FileStore) Refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("stat roster source: %w", err)
	}
	fp := fingerprint{modTime: info.ModTime(), size: info.Size()}

	s.mu.RLock()
	same := s.loaded && s.fp == fp
	s.mu.RUnlock()
	if same {
		return nil
	}
	return s.load(fp)
}

// ensure lazily populates the cache on first access.
func (s *FileStore) ensure(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		metrics.RecordRosterCacheHit()
		return nil
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("stat roster source: %w", err)
	}
	return s.load(fingerprint{modTime: info.ModTime(), size: info.Size()})
}

// load parses the file and swaps the cache under the write lock. The lock
// is held for the whole parse so concurrent first reads parse once.
func (s *FileStore) load(fp fingerprint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have loaded the same snapshot while we
	// waited for the lock.
	if s.loaded && s.fp == fp {
		return nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		metrics.RecordRosterLoadError()
		return fmt.Errorf("open roster source: %w", err)
	}
	defer f.Close()

	start := time.Now()
	r, report, err := roster.Parse(f, roster.WithIDPrefix(s.idPrefix))
	if err != nil {
		metrics.RecordRosterLoadError()
		return fmt.Errorf("parse roster %q: %w", s.path, err)
	}

	metrics.RecordRosterLoad()
	metrics.RecordRosterLoadDuration(float64(time.Since(start).Microseconds()) / 1000.0)
	metrics.UpdateRosterEmployees(len(r))
	metrics.RecordRosterRowsDropped("bad_comp", report.DroppedBadComp)
	metrics.RecordRosterRowsDropped("bad_id", report.DroppedBadID)

	s.loaded = true
	s.fp = fp
	s.roster = r
	s.meta = Meta{
		Source:         s.path,
		TotalEmployees: len(r),
		LoadedAt:       time.Now().UTC(),
		RowsRead:       report.TotalRows,
		RowsDropped:    report.Dropped(),
		DroppedBadComp: report.DroppedBadComp,
		DroppedBadID:   report.DroppedBadID,
	}
	return nil
}
