// README: Payment service records checkout outcomes for bookings.
package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"citypass/internal/modules/booking"
	"citypass/internal/types"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("payment not found")
	ErrNotPayable = errors.New("booking is not payable")
)

// Bookings is the slice of the booking service the checkout flow needs.
type Bookings interface {
	Get(ctx context.Context, id types.ID) (*booking.Booking, error)
}

// Store persists payment records; implemented by the pgx store and an
// in-memory fake in tests.
type Store interface {
	Create(ctx context.Context, p *Payment) error
	GetByBooking(ctx context.Context, bookingID types.ID) (*Payment, error)
}

type Service struct {
	store    Store
	bookings Bookings
}

func NewService(store Store, bookings Bookings) *Service {
	return &Service{store: store, bookings: bookings}
}

type CheckoutCommand struct {
	BookingID types.ID
	Method    Method
}

// Checkout records a single payment attempt for the booking's total. Only
// requested or confirmed bookings can be paid; terminal bookings cannot.
func (s *Service) Checkout(ctx context.Context, cmd CheckoutCommand) (*Payment, error) {
	if cmd.BookingID == "" || cmd.Method == "" {
		return nil, ErrBadRequest
	}
	b, err := s.bookings.Get(ctx, cmd.BookingID)
	if err != nil {
		return nil, err
	}
	switch b.Status {
	case booking.StatusRequested, booking.StatusConfirmed:
	default:
		return nil, ErrNotPayable
	}

	p := &Payment{
		ID:        types.ID(uuid.NewString()),
		BookingID: b.ID,
		Amount:    b.Total,
		Method:    cmd.Method,
		Status:    StatusSucceeded,
		CreatedAt: time.Now(),
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByBooking returns the payment recorded for a booking, if any.
func (s *Service) GetByBooking(ctx context.Context, bookingID types.ID) (*Payment, error) {
	return s.store.GetByBooking(ctx, bookingID)
}
