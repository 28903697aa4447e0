// README: Fare service computes trip quotes from the station index table.
package fare

import (
	"context"
	"log"
	"math"

	"citypass/internal/modules/station"
	"citypass/internal/types"
)

// Service prices metro trips. Quote itself is pure: stop distance comes from
// the immutable station table and the tariff is resolved once per call.
type Service struct {
	catalog *station.Catalog
	store   *Store
}

// NewService creates a fare service. store may be nil, in which case the
// default tariff is always used.
func NewService(catalog *station.Catalog, store *Store) *Service {
	return &Service{catalog: catalog, store: store}
}

// Quote prices a trip between two stations. Both stations must resolve in the
// catalog; same-station trips are priced at the minimum base fare.
func (s *Service) Quote(ctx context.Context, origin, destination types.ID, roundTrip bool) (Quote, error) {
	stops, err := s.catalog.StopsBetween(origin, destination)
	if err != nil {
		return Quote{}, err
	}

	t := s.tariff(ctx)
	amount := t.BaseFare + int64(stops)*t.PerStop
	if roundTrip {
		amount = int64(math.Round(float64(amount) * t.RoundTripFactor))
	}

	return Quote{
		Stops:     stops,
		RoundTrip: roundTrip,
		Amount:    amount,
		Currency:  t.Currency,
	}, nil
}

// tariff resolves the effective tariff, falling back to the default when the
// store is absent or unreachable. A tariff lookup failure must never block a
// quote.
func (s *Service) tariff(ctx context.Context) Tariff {
	if s.store == nil {
		return DefaultTariff()
	}
	t, err := s.store.GetTariff(ctx)
	if err != nil {
		if err != ErrNoTariff {
			log.Printf("fare: tariff lookup failed, using default: %v", err)
		}
		return DefaultTariff()
	}
	return t
}
