// README: Bus tracking service; live position updates and radius queries.
package bus

import (
	"context"
	"errors"
	"sync"
	"time"

	"citypass/internal/types"
)

var ErrBadUpdate = errors.New("invalid position update")

// snapshotEvery controls how often a live update is also flushed to the
// history table. Positions arrive every few seconds; one sample a minute is
// enough for trip history.
const snapshotEvery = time.Minute

// Store persists live positions and history snapshots. Implemented by the
// Redis-backed GeoStore in production and by an in-memory fake in tests.
type Store interface {
	SetGeo(ctx context.Context, id types.ID, pos types.Point) error
	Remove(ctx context.Context, id types.ID) error
	Nearby(ctx context.Context, p types.Point, radiusKm float64) ([]NearbyBus, error)
	AppendSnapshot(ctx context.Context, snap Snapshot) error
}

type Service struct {
	store Store

	// mu guards lastSnapshot; updates for many buses land concurrently.
	mu           sync.Mutex
	lastSnapshot map[types.ID]time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, lastSnapshot: map[types.ID]time.Time{}}
}

// Update records a live bus position. The GEO write is the source of truth;
// the history snapshot is throttled and best-effort.
func (s *Service) Update(ctx context.Context, u PositionUpdate) error {
	if u.BusID == "" {
		return ErrBadUpdate
	}
	if u.Position.Lat < -90 || u.Position.Lat > 90 || u.Position.Lng < -180 || u.Position.Lng > 180 {
		return ErrBadUpdate
	}
	if err := s.store.SetGeo(ctx, u.BusID, u.Position); err != nil {
		return err
	}

	now := time.Now()
	if s.claimSnapshot(u.BusID, now) {
		_ = s.store.AppendSnapshot(ctx, Snapshot{
			BusID:      u.BusID,
			Route:      u.Route,
			Position:   u.Position,
			RecordedAt: now,
		})
	}
	return nil
}

// claimSnapshot decides whether this update should also be flushed to the
// history table. At most one caller per bus wins the slot per interval.
func (s *Service) claimSnapshot(id types.ID, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.Sub(s.lastSnapshot[id]) < snapshotEvery {
		return false
	}
	s.lastSnapshot[id] = now
	return true
}

// Nearby returns buses within radiusKm of p, closest first.
func (s *Service) Nearby(ctx context.Context, p types.Point, radiusKm float64) ([]NearbyBus, error) {
	buses, err := s.store.Nearby(ctx, p, radiusKm)
	if err != nil {
		return nil, err
	}
	// Redis already sorts ascending; keep the guarantee even if the backend
	// changes.
	sortByDistance(buses, func(b NearbyBus) float64 { return b.Distance })
	return buses, nil
}

// Retire removes a bus from live tracking.
func (s *Service) Retire(ctx context.Context, id types.ID) error {
	return s.store.Remove(ctx, id)
}
