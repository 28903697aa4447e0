// README: Shared identifier and point types.
package types

// ID is an opaque entity identifier (station code, user uid, booking ref, ...).
type ID string

// Point is a WGS84 coordinate used by the bus-tracking module.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
