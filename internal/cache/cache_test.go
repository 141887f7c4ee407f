package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"ilm-dashboard/internal/ilm"
)

func testSnapshot(t *testing.T, fetchedAt time.Time) *Snapshot {
	t.Helper()
	va, err := ilm.EmptyTable(ilm.VirtualAccess, ilm.SourceRemote)
	if err != nil {
		t.Fatalf("EmptyTable failed: %v", err)
	}
	ta, err := ilm.EmptyTable(ilm.TransnationalAccess, ilm.SourceRemote)
	if err != nil {
		t.Fatalf("EmptyTable failed: %v", err)
	}
	return &Snapshot{VA: va, TA: ta, FetchedAt: fetchedAt}
}

func TestStore_ServesCachedWithinTTL(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	loads := 0
	s := NewStore(5*time.Minute, func(ctx context.Context) (*Snapshot, error) {
		loads++
		return testSnapshot(t, now), nil
	})
	s.now = func() time.Time { return now }

	first, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("first read failed: %v", err)
	}

	now = now.Add(4 * time.Minute)
	second, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("second read failed: %v", err)
	}
	if loads != 1 {
		t.Errorf("loaded %d times within TTL, want 1", loads)
	}
	if first != second {
		t.Error("reads within TTL must return the same snapshot")
	}
}

func TestStore_RefreshReplacesWholesale(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	loads := 0
	s := NewStore(5*time.Minute, func(ctx context.Context) (*Snapshot, error) {
		loads++
		return testSnapshot(t, now), nil
	})
	s.now = func() time.Time { return now }

	first, _ := s.Snapshot(context.Background())

	now = now.Add(5 * time.Minute) // boundary: exactly TTL old is stale
	second, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if loads != 2 {
		t.Errorf("loaded %d times, want 2", loads)
	}
	if first == second {
		t.Error("a refresh must produce a new snapshot, not patch the old one")
	}
}

func TestStore_ServesStaleOnRefreshFailure(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fail := false
	s := NewStore(time.Minute, func(ctx context.Context) (*Snapshot, error) {
		if fail {
			return nil, errors.New("source down")
		}
		return testSnapshot(t, now), nil
	})
	s.now = func() time.Time { return now }

	first, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("first read failed: %v", err)
	}

	fail = true
	now = now.Add(2 * time.Minute)
	got, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("stale read errored: %v", err)
	}
	if got != first {
		t.Error("refresh failure must fall back to the stale snapshot")
	}
}

func TestStore_FirstLoadFailurePropagates(t *testing.T) {
	wantErr := errors.New("source down")
	s := NewStore(time.Minute, func(ctx context.Context) (*Snapshot, error) {
		return nil, wantErr
	})

	if _, err := s.Snapshot(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("got %v, want the load error", err)
	}
}

func TestStore_InvalidateForcesReload(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	loads := 0
	s := NewStore(time.Hour, func(ctx context.Context) (*Snapshot, error) {
		loads++
		return testSnapshot(t, now), nil
	})
	s.now = func() time.Time { return now }

	s.Snapshot(context.Background())
	s.Invalidate()
	s.Snapshot(context.Background())

	if loads != 2 {
		t.Errorf("loaded %d times, want 2 after Invalidate", loads)
	}
}
