// README: Ticket service; issues trip records and maintains bounded history.
package ticket

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"citypass/internal/modules/fare"
	"citypass/internal/types"
)

// ErrSameStation is returned when origin and destination are the same stop.
// Unlike a bare fare quote, a ticket must reference two distinct stations.
var ErrSameStation = errors.New("origin and destination must differ")

// History persists the per-user recent-ticket list. Implemented by the Redis
// store in production and by an in-memory fake in tests.
type History interface {
	Load(ctx context.Context, userID types.ID) ([]Ticket, error)
	Save(ctx context.Context, userID types.ID, tickets []Ticket) error
}

type Service struct {
	fare    *fare.Service
	history History
}

func NewService(fareSvc *fare.Service, history History) *Service {
	return &Service{fare: fareSvc, history: history}
}

// Issue creates a ticket for the given trip. The fare is computed from the
// station table; the new record is prepended to the user's bounded history.
// History persistence is best-effort: a failed write is logged, never
// surfaced, and the issued ticket stays valid in memory.
func (s *Service) Issue(ctx context.Context, userID, origin, destination types.ID, roundTrip bool) (Ticket, error) {
	if origin == destination {
		return Ticket{}, ErrSameStation
	}

	q, err := s.fare.Quote(ctx, origin, destination, roundTrip)
	if err != nil {
		return Ticket{}, err
	}

	tripType := TripOneWay
	if roundTrip {
		tripType = TripTwoWay
	}

	now := time.Now().UnixMilli()
	t := Ticket{
		ID:        fmt.Sprintf("TKT-%d", now),
		From:      origin,
		To:        destination,
		Fare:      types.Money{Amount: q.Amount, Currency: q.Currency},
		Type:      tripType,
		IssuedAt:  now,
		QRPayload: fmt.Sprintf("%s-%s-%d", origin, destination, now),
	}

	s.appendHistory(ctx, userID, t)
	return t, nil
}

// RecentTickets returns the user's history, most recent first.
func (s *Service) RecentTickets(ctx context.Context, userID types.ID) ([]Ticket, error) {
	return s.history.Load(ctx, userID)
}

func (s *Service) appendHistory(ctx context.Context, userID types.ID, t Ticket) {
	list, err := s.history.Load(ctx, userID)
	if err != nil {
		log.Printf("ticket: load history for %s: %v", userID, err)
		list = nil
	}
	if err := s.history.Save(ctx, userID, pushHistory(list, t)); err != nil {
		// Single attempt, no retry: the user already holds the ticket.
		log.Printf("ticket: save history for %s: %v", userID, err)
	}
}

// pushHistory prepends t and truncates the list to HistoryLimit entries.
func pushHistory(list []Ticket, t Ticket) []Ticket {
	out := make([]Ticket, 0, len(list)+1)
	out = append(out, t)
	out = append(out, list...)
	if len(out) > HistoryLimit {
		out = out[:HistoryLimit]
	}
	return out
}
