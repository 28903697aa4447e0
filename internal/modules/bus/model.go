// README: Bus positions for the live-tracking vertical.
package bus

import (
	"time"

	"citypass/internal/types"
)

// PositionUpdate is one GPS report from a tracked bus.
type PositionUpdate struct {
	BusID    types.ID
	Route    string
	Position types.Point
}

// NearbyBus is a bus returned from a radius query, closest first.
type NearbyBus struct {
	BusID    types.ID `json:"bus_id"`
	Distance float64  `json:"distance_km"`
}

// Snapshot is a persisted position sample used for trip history.
type Snapshot struct {
	ID         int64
	BusID      types.ID
	Route      string
	Position   types.Point
	RecordedAt time.Time
}
