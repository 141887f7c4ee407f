// Package cache holds the wholesale dataset snapshot between refresh cycles.
// A snapshot is replaced atomically, never patched, so readers observe
// either the previous complete state or the next one.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"ilm-dashboard/internal/ilm"
)

// Snapshot is one complete refresh result: both canonical tables plus the
// time they were fetched. Provenance travels on the tables themselves.
type Snapshot struct {
	VA        *ilm.Table
	TA        *ilm.Table
	FetchedAt time.Time
}

// LoadFunc produces a fresh snapshot from the data sources.
type LoadFunc func(ctx context.Context) (*Snapshot, error)

// Store is a single-entry TTL cache over the dataset snapshot. Concurrent
// refreshes collapse into one in-flight load.
type Store struct {
	ttl  time.Duration
	load LoadFunc
	now  func() time.Time

	mu      sync.RWMutex
	current *Snapshot

	group singleflight.Group
}

// NewStore creates a snapshot store refreshing at most once per ttl.
func NewStore(ttl time.Duration, load LoadFunc) *Store {
	return &Store{ttl: ttl, load: load, now: time.Now}
}

// isStale reports whether a snapshot must be refetched. Pure on its inputs.
func (s *Store) isStale(snap *Snapshot, now time.Time) bool {
	return snap == nil || now.Sub(snap.FetchedAt) >= s.ttl
}

// Snapshot returns the cached snapshot, refreshing it when stale. If the
// refresh fails and a previous snapshot exists, the stale snapshot is served
// so a transient source outage never blanks the dashboard.
func (s *Store) Snapshot(ctx context.Context) (*Snapshot, error) {
	s.mu.RLock()
	snap := s.current
	s.mu.RUnlock()

	if !s.isStale(snap, s.now()) {
		return snap, nil
	}

	fresh, err, _ := s.group.Do("snapshot", func() (interface{}, error) {
		// Re-check under the flight: another caller may have refreshed.
		s.mu.RLock()
		cur := s.current
		s.mu.RUnlock()
		if !s.isStale(cur, s.now()) {
			return cur, nil
		}

		loaded, err := s.load(ctx)
		if err != nil {
			return nil, err
		}
		if loaded.FetchedAt.IsZero() {
			loaded.FetchedAt = s.now()
		}

		s.mu.Lock()
		s.current = loaded
		s.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		if snap != nil {
			log.Warn().Err(err).Msg("Refresh failed, serving stale snapshot")
			return snap, nil
		}
		return nil, err
	}
	return fresh.(*Snapshot), nil
}

// Invalidate drops the cached snapshot so the next read refetches.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}
