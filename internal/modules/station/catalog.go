// README: Immutable station catalog; table order defines stop distance.
package station

import (
	"errors"
	"fmt"
	"strings"

	"citypass/internal/types"
)

// ErrUnknownStation is returned when a station id does not resolve in the catalog.
var ErrUnknownStation = errors.New("unknown station")

// Catalog is the ordered station index table. It is built once at startup and
// never mutated afterwards; selection state belongs to callers.
type Catalog struct {
	stations []Station
	index    map[types.ID]int
}

// NewCatalog builds a catalog from an ordered station list.
// Duplicate ids are rejected since index lookup would be ambiguous.
func NewCatalog(stations []Station) (*Catalog, error) {
	index := make(map[types.ID]int, len(stations))
	for i, s := range stations {
		if s.ID == "" {
			return nil, fmt.Errorf("station at index %d has empty id", i)
		}
		if _, dup := index[s.ID]; dup {
			return nil, fmt.Errorf("duplicate station id %q", s.ID)
		}
		index[s.ID] = i
	}
	cp := make([]Station, len(stations))
	copy(cp, stations)
	return &Catalog{stations: cp, index: index}, nil
}

// Get returns the station for id.
func (c *Catalog) Get(id types.ID) (Station, error) {
	i, ok := c.index[id]
	if !ok {
		return Station{}, fmt.Errorf("%w: %s", ErrUnknownStation, id)
	}
	return c.stations[i], nil
}

// IndexOf returns the table position of id.
func (c *Catalog) IndexOf(id types.ID) (int, error) {
	i, ok := c.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownStation, id)
	}
	return i, nil
}

// StopsBetween returns the stop count between two stations: the absolute
// difference of their table positions.
func (c *Catalog) StopsBetween(a, b types.ID) (int, error) {
	ia, err := c.IndexOf(a)
	if err != nil {
		return 0, err
	}
	ib, err := c.IndexOf(b)
	if err != nil {
		return 0, err
	}
	d := ia - ib
	if d < 0 {
		d = -d
	}
	return d, nil
}

// FindByName resolves a station by display name, case-insensitively.
// Used when station names arrive from free-form user input.
func (c *Catalog) FindByName(name string) (Station, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, s := range c.stations {
		if strings.ToLower(s.Name) == want {
			return s, nil
		}
	}
	return Station{}, fmt.Errorf("%w: %s", ErrUnknownStation, name)
}

// All returns a copy of the ordered station list.
func (c *Catalog) All() []Station {
	out := make([]Station, len(c.stations))
	copy(out, c.stations)
	return out
}

// Len returns the number of stations in the table.
func (c *Catalog) Len() int {
	return len(c.stations)
}
