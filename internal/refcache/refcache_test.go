package refcache

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStore struct {
	data map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return v, nil
}

func (f *fakeStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	f.data[key] = value
	return nil
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func testSnapshot() *Snapshot {
	return &Snapshot{
		Projects: []Project{{ID: "1", Name: "Harbour Bridge"}},
		Teams:    []Team{{ID: "10", Name: "Civil"}},
		TypesByTeam: map[string][]LabourType{
			"10": {{ID: "100", TeamID: "10", TypeName: "Mason"}},
		},
	}
}

func countingLoader(snap *Snapshot, calls *int) Loader {
	return func(ctx context.Context, userID string) (*Snapshot, error) {
		*calls++
		return snap, nil
	}
}

func TestRefreshWritesBackAndHydrates(t *testing.T) {
	store := newFakeStore()
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	calls := 0
	s := New(store, clock, 10*time.Minute, countingLoader(testSnapshot(), &calls))

	snap, err := s.Refresh(context.Background(), "7", true)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if snap.Empty() {
		t.Fatal("refresh returned empty snapshot")
	}
	if calls != 1 {
		t.Fatalf("loader calls = %d, want 1", calls)
	}

	// a fresh service over the same store sees the persisted snapshot
	s2 := New(store, clock, 10*time.Minute, countingLoader(testSnapshot(), &calls))
	got := s2.Hydrate(context.Background(), "7")
	if got.Empty() {
		t.Fatal("hydrate returned empty snapshot after write-back")
	}
	if got.Projects[0].Name != "Harbour Bridge" {
		t.Fatalf("hydrated project = %q", got.Projects[0].Name)
	}
	if calls != 1 {
		t.Fatalf("hydrate touched the loader, calls = %d", calls)
	}
}

func TestHydrateExpiredEnvelopeIsMiss(t *testing.T) {
	store := newFakeStore()
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	calls := 0
	s := New(store, clock, 10*time.Minute, countingLoader(testSnapshot(), &calls))
	if _, err := s.Refresh(context.Background(), "7", true); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	clock.Advance(10 * time.Minute)

	s2 := New(store, clock, 10*time.Minute, countingLoader(testSnapshot(), &calls))
	got := s2.Hydrate(context.Background(), "7")
	if !got.Empty() {
		t.Fatal("expired envelope should hydrate as empty")
	}
}

func TestHydrateMalformedEnvelopeIsMiss(t *testing.T) {
	store := newFakeStore()
	store.data["ref:projects:7"] = "{not json"
	store.data["ref:labour_teams:7"] = `{"ts":0,"data":[]}`
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	calls := 0
	s := New(store, clock, 10*time.Minute, countingLoader(testSnapshot(), &calls))

	got := s.Hydrate(context.Background(), "7")
	if !got.Empty() {
		t.Fatal("malformed and zero-ts envelopes should hydrate as empty")
	}
}

func TestRefreshWithinTTLDoesNotReload(t *testing.T) {
	store := newFakeStore()
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	calls := 0
	s := New(store, clock, 10*time.Minute, countingLoader(testSnapshot(), &calls))

	if _, err := s.Refresh(context.Background(), "7", true); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if _, err := s.Refresh(context.Background(), "7", false); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if calls != 1 {
		t.Fatalf("loader calls = %d, want 1", calls)
	}

	clock.Advance(10 * time.Minute)
	if _, err := s.Refresh(context.Background(), "7", false); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if calls != 2 {
		t.Fatalf("loader calls after expiry = %d, want 2", calls)
	}
}

func TestRefreshInFlightIsNoOp(t *testing.T) {
	store := newFakeStore()
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	calls := 0
	s := New(store, clock, 10*time.Minute, countingLoader(testSnapshot(), &calls))

	if _, err := s.Refresh(context.Background(), "7", true); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	s.mu.Lock()
	s.users["7"].inFlight = true
	s.mu.Unlock()

	snap, err := s.Refresh(context.Background(), "7", true)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if snap.Empty() {
		t.Fatal("in-flight refresh should return the current snapshot")
	}
	if calls != 1 {
		t.Fatalf("loader calls = %d, want 1 (second refresh must be a no-op)", calls)
	}
}

func TestRefreshKeepsStaleSnapshotOnLoaderError(t *testing.T) {
	store := newFakeStore()
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	fail := false
	calls := 0
	loader := func(ctx context.Context, userID string) (*Snapshot, error) {
		calls++
		if fail {
			return nil, errors.New("backend down")
		}
		return testSnapshot(), nil
	}
	s := New(store, clock, 10*time.Minute, loader)

	if _, err := s.Refresh(context.Background(), "7", true); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	fail = true
	snap, err := s.Refresh(context.Background(), "7", true)
	if err == nil {
		t.Fatal("expected loader error")
	}
	if snap.Empty() {
		t.Fatal("stale snapshot must survive a failed refresh")
	}
	if snap.Projects[0].Name != "Harbour Bridge" {
		t.Fatalf("stale project = %q", snap.Projects[0].Name)
	}
}

func TestRefreshIfEmpty(t *testing.T) {
	store := newFakeStore()
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	calls := 0
	s := New(store, clock, 10*time.Minute, countingLoader(testSnapshot(), &calls))

	snap, err := s.RefreshIfEmpty(context.Background(), "7")
	if err != nil {
		t.Fatalf("refresh if empty: %v", err)
	}
	if snap.Empty() {
		t.Fatal("empty cache should trigger a load")
	}
	if calls != 1 {
		t.Fatalf("loader calls = %d, want 1", calls)
	}

	if _, err := s.RefreshIfEmpty(context.Background(), "7"); err != nil {
		t.Fatalf("refresh if empty: %v", err)
	}
	if calls != 1 {
		t.Fatalf("populated cache must not reload, calls = %d", calls)
	}
}
