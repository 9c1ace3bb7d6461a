package refdata

import (
	"context"
	"strconv"

	"sitelabour/internal/abstraction"
	"sitelabour/internal/dto"
	"sitelabour/internal/factory"
	"sitelabour/internal/refcache"

	"github.com/sirupsen/logrus"
)

type Service interface {
	Get(ctx *abstraction.Context) (map[string]interface{}, error)
	Refresh(ctx *abstraction.Context, payload *dto.RefdataRefreshRequest) (map[string]interface{}, error)
	Retry(ctx *abstraction.Context) (map[string]interface{}, error)
}

type service struct {
	RefCache *refcache.Service
}

func NewService(f *factory.Factory) Service {
	return &service{
		RefCache: f.RefCache,
	}
}

func snapshotResponse(snap *refcache.Snapshot, stale bool) map[string]interface{} {
	return map[string]interface{}{
		"projects":      snap.Projects,
		"teams":         snap.Teams,
		"types_by_team": snap.TypesByTeam,
		"stale":         stale,
	}
}

// Get serves whatever is cached and kicks a refresh behind the response when
// the cache is cold. Stale beats empty.
func (s *service) Get(ctx *abstraction.Context) (map[string]interface{}, error) {
	userID := strconv.Itoa(ctx.Auth.ID)

	snap := s.RefCache.Hydrate(context.Background(), userID)
	if snap.Empty() {
		fresh, err := s.RefCache.Refresh(context.Background(), userID, true)
		if err != nil {
			logrus.Warnf("refdata refresh for user %s failed, serving cached: %s", userID, err.Error())
			return snapshotResponse(snap, true), nil
		}
		if fresh != nil {
			snap = fresh
		}
		return snapshotResponse(snap, false), nil
	}

	// warm cache: answer now, revalidate behind the response. Within the TTL
	// the non-forced refresh is a no-op.
	go func() {
		if _, err := s.RefCache.Refresh(context.Background(), userID, false); err != nil {
			logrus.Warnf("refdata background refresh for user %s failed: %s", userID, err.Error())
		}
	}()

	return snapshotResponse(snap, false), nil
}

func (s *service) Refresh(ctx *abstraction.Context, payload *dto.RefdataRefreshRequest) (map[string]interface{}, error) {
	userID := strconv.Itoa(ctx.Auth.ID)

	snap, err := s.RefCache.Refresh(context.Background(), userID, payload.Force)
	if err != nil {
		logrus.Warnf("refdata refresh for user %s failed, serving cached: %s", userID, err.Error())
		if snap == nil {
			snap = s.RefCache.Current(userID)
		}
		return snapshotResponse(snap, true), nil
	}
	if snap == nil {
		snap = s.RefCache.Current(userID)
	}

	return snapshotResponse(snap, false), nil
}

// Retry backs the client's back-online and tab-visible hooks: refill only
// when something is missing.
func (s *service) Retry(ctx *abstraction.Context) (map[string]interface{}, error) {
	userID := strconv.Itoa(ctx.Auth.ID)

	snap, err := s.RefCache.RefreshIfEmpty(context.Background(), userID)
	if err != nil {
		logrus.Warnf("refdata retry for user %s failed, serving cached: %s", userID, err.Error())
		if snap == nil {
			snap = s.RefCache.Current(userID)
		}
		return snapshotResponse(snap, true), nil
	}
	if snap == nil {
		snap = s.RefCache.Current(userID)
	}

	return snapshotResponse(snap, false), nil
}
