package refcache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"sitelabour/pkg/constant"

	"github.com/sirupsen/logrus"
)

// Store is the persistence behind the cache. Get returns ErrCacheMiss for an
// absent key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func RealClock() Clock { return realClock{} }

var ErrCacheMiss = fmt.Errorf("refcache: miss")

// Reference collections carry string ids: selection controls on the client
// compare by string value.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LabourType struct {
	ID       string `json:"id"`
	TeamID   string `json:"team_id"`
	TypeName string `json:"type_name"`
}

type Snapshot struct {
	Projects    []Project               `json:"projects"`
	Teams       []Team                  `json:"teams"`
	TypesByTeam map[string][]LabourType `json:"types_by_team"`
}

func (s *Snapshot) Empty() bool {
	return s == nil || len(s.Projects) == 0 || len(s.Teams) == 0 || len(s.TypesByTeam) == 0
}

// Loader fetches all three reference collections from the database.
type Loader func(ctx context.Context, userID string) (*Snapshot, error)

type envelope struct {
	Ts   int64           `json:"ts"`
	Data json.RawMessage `json:"data"`
}

type userState struct {
	snapshot    *Snapshot
	refreshedAt time.Time
	inFlight    bool
}

// Service is a TTL cache over the reference collections with single-flight
// refresh per user. Stale data is preferred over no data: a failed refresh
// keeps the previous snapshot.
type Service struct {
	store  Store
	clock  Clock
	ttl    time.Duration
	loader Loader

	mu    sync.Mutex
	users map[string]*userState
}

func New(store Store, clock Clock, ttl time.Duration, loader Loader) *Service {
	if ttl <= 0 {
		ttl = constant.REFCACHE_TTL
	}
	return &Service{
		store:  store,
		clock:  clock,
		ttl:    ttl,
		loader: loader,
		users:  make(map[string]*userState),
	}
}

func cacheKey(entity, userID string) string {
	return fmt.Sprintf(constant.REFCACHE_KEY_FORMAT, entity, userID)
}

func (s *Service) state(userID string) *userState {
	st, ok := s.users[userID]
	if !ok {
		st = &userState{}
		s.users[userID] = st
	}
	return st
}

// Hydrate loads the snapshot from the store, honoring the TTL. A malformed
// envelope or an expired timestamp counts as a miss for that entity.
func (s *Service) Hydrate(ctx context.Context, userID string) *Snapshot {
	snap := &Snapshot{TypesByTeam: map[string][]LabourType{}}

	readEntity := func(entity string, out interface{}) bool {
		raw, err := s.store.Get(ctx, cacheKey(entity, userID))
		if err != nil {
			return false
		}
		var env envelope
		if err := json.Unmarshal([]byte(raw), &env); err != nil {
			return false
		}
		if env.Ts <= 0 {
			return false
		}
		age := s.clock.Now().Sub(time.UnixMilli(env.Ts))
		if age >= s.ttl {
			return false
		}
		return json.Unmarshal(env.Data, out) == nil
	}

	readEntity(constant.REFCACHE_ENTITY_PROJECTS, &snap.Projects)
	readEntity(constant.REFCACHE_ENTITY_TEAMS, &snap.Teams)
	readEntity(constant.REFCACHE_ENTITY_TYPES, &snap.TypesByTeam)

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(userID)
	if st.snapshot == nil && !snap.Empty() {
		st.snapshot = snap
	}
	if st.snapshot != nil {
		return st.snapshot
	}
	return snap
}

// Current returns the in-memory snapshot without touching store or loader.
func (s *Service) Current(userID string) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.users[userID]; ok && st.snapshot != nil {
		return st.snapshot
	}
	return &Snapshot{TypesByTeam: map[string][]LabourType{}}
}

// Refresh fetches fresh collections through the loader. At most one refresh
// per user is in flight: a concurrent call is a no-op and returns the current
// snapshot. Without force, a snapshot still inside the TTL is returned as is.
// On loader failure the previous snapshot is kept and the error returned with
// it.
func (s *Service) Refresh(ctx context.Context, userID string, force bool) (*Snapshot, error) {
	s.mu.Lock()
	st := s.state(userID)
	if st.inFlight {
		snap := st.snapshot
		s.mu.Unlock()
		return snap, nil
	}
	if !force && st.snapshot != nil && s.clock.Now().Sub(st.refreshedAt) < s.ttl {
		snap := st.snapshot
		s.mu.Unlock()
		return snap, nil
	}
	st.inFlight = true
	s.mu.Unlock()

	snap, err := s.loader(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	st.inFlight = false
	if err != nil {
		return st.snapshot, err
	}

	// all three collections replaced together
	st.snapshot = snap
	st.refreshedAt = s.clock.Now()

	s.writeBack(ctx, userID, snap)
	return snap, nil
}

// RefreshIfEmpty is the visibility/online retry path: refresh only when at
// least one collection is empty, never force past an in-flight refresh.
func (s *Service) RefreshIfEmpty(ctx context.Context, userID string) (*Snapshot, error) {
	s.mu.Lock()
	st := s.state(userID)
	empty := st.snapshot.Empty()
	inFlight := st.inFlight
	s.mu.Unlock()

	if !empty || inFlight {
		return s.Current(userID), nil
	}
	return s.Refresh(ctx, userID, true)
}

func (s *Service) writeBack(ctx context.Context, userID string, snap *Snapshot) {
	ts := s.clock.Now().UnixMilli()
	write := func(entity string, data interface{}) {
		raw, err := json.Marshal(data)
		if err != nil {
			logrus.Errorf("refcache marshal %s: %s", entity, err.Error())
			return
		}
		env, err := json.Marshal(envelope{Ts: ts, Data: raw})
		if err != nil {
			logrus.Errorf("refcache marshal envelope %s: %s", entity, err.Error())
			return
		}
		if err := s.store.Set(ctx, cacheKey(entity, userID), string(env), s.ttl); err != nil {
			logrus.Errorf("refcache write %s: %s", entity, err.Error())
		}
	}
	write(constant.REFCACHE_ENTITY_PROJECTS, snap.Projects)
	write(constant.REFCACHE_ENTITY_TEAMS, snap.Teams)
	write(constant.REFCACHE_ENTITY_TYPES, snap.TypesByTeam)
}
