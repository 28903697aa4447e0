// README: Bus store backed by Redis GEO with Postgres snapshots.
package bus

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"citypass/internal/types"
)

const busGeoKey = "tracking:buses"

type GeoStore struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func NewStore(db *pgxpool.Pool, redis *redis.Client) *GeoStore {
	return &GeoStore{db: db, redis: redis}
}

// SetGeo upserts the live position of a bus in the GEO set.
func (s *GeoStore) SetGeo(ctx context.Context, id types.ID, pos types.Point) error {
	return s.redis.GeoAdd(ctx, busGeoKey, &redis.GeoLocation{
		Name:      string(id),
		Longitude: pos.Lng,
		Latitude:  pos.Lat,
	}).Err()
}

// Remove drops a bus from the GEO set when it goes off shift.
func (s *GeoStore) Remove(ctx context.Context, id types.ID) error {
	return s.redis.ZRem(ctx, busGeoKey, string(id)).Err()
}

// Nearby returns buses within radiusKm of p, closest first.
func (s *GeoStore) Nearby(ctx context.Context, p types.Point, radiusKm float64) ([]NearbyBus, error) {
	results, err := s.redis.GeoSearchLocation(ctx, busGeoKey, &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  p.Lng,
			Latitude:   p.Lat,
			Radius:     radiusKm,
			RadiusUnit: "km",
			Sort:       "ASC",
		},
		WithDist: true,
	}).Result()
	if err != nil {
		return nil, err
	}
	out := make([]NearbyBus, len(results))
	for i, r := range results {
		out[i] = NearbyBus{BusID: types.ID(r.Name), Distance: r.Dist}
	}
	return out, nil
}

// AppendSnapshot persists one position sample for history queries.
// A store without a DB pool silently drops snapshots; live tracking
// still works off Redis alone.
func (s *GeoStore) AppendSnapshot(ctx context.Context, snap Snapshot) error {
	if s.db == nil {
		return nil
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO bus_snapshots (bus_id, route, lat, lng, recorded_at)
		VALUES ($1, $2, $3, $4, $5)`,
		string(snap.BusID),
		snap.Route,
		snap.Position.Lat,
		snap.Position.Lng,
		snap.RecordedAt,
	)
	return err
}
