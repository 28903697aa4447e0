// README: Payment checkout tests.
package payment

import (
	"context"
	"errors"
	"testing"

	"citypass/internal/modules/booking"
	"citypass/internal/types"
)

type memStore struct {
	byBooking map[types.ID]*Payment
}

func newMemStore() *memStore {
	return &memStore{byBooking: map[types.ID]*Payment{}}
}

func (m *memStore) Create(_ context.Context, p *Payment) error {
	cp := *p
	m.byBooking[p.BookingID] = &cp
	return nil
}

func (m *memStore) GetByBooking(_ context.Context, bookingID types.ID) (*Payment, error) {
	p, ok := m.byBooking[bookingID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

type stubBookings struct {
	bookings map[types.ID]*booking.Booking
}

func (s *stubBookings) Get(_ context.Context, id types.ID) (*booking.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return b, nil
}

func fixtureBookings() *stubBookings {
	return &stubBookings{bookings: map[types.ID]*booking.Booking{
		"b_requested": {ID: "b_requested", UserID: "u1", Status: booking.StatusRequested, Total: types.Rupees(359)},
		"b_confirmed": {ID: "b_confirmed", UserID: "u1", Status: booking.StatusConfirmed, Total: types.Rupees(199)},
		"b_completed": {ID: "b_completed", UserID: "u1", Status: booking.StatusCompleted, Total: types.Rupees(359)},
		"b_cancelled": {ID: "b_cancelled", UserID: "u1", Status: booking.StatusCancelled, Total: types.Rupees(359)},
	}}
}

func TestCheckout(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, fixtureBookings())
	ctx := context.Background()

	p, err := svc.Checkout(ctx, CheckoutCommand{BookingID: "b_requested", Method: MethodUPI})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if p.Amount.Amount != 359 {
		t.Errorf("amount = %d, want 359 (the booking total)", p.Amount.Amount)
	}
	if p.Status != StatusSucceeded {
		t.Errorf("status = %s, want %s", p.Status, StatusSucceeded)
	}

	got, err := svc.GetByBooking(ctx, "b_requested")
	if err != nil {
		t.Fatalf("GetByBooking: %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("persisted payment id = %s, want %s", got.ID, p.ID)
	}
}

func TestCheckoutRejectsTerminalBookings(t *testing.T) {
	svc := NewService(newMemStore(), fixtureBookings())
	ctx := context.Background()

	for _, id := range []types.ID{"b_completed", "b_cancelled"} {
		if _, err := svc.Checkout(ctx, CheckoutCommand{BookingID: id, Method: MethodCard}); !errors.Is(err, ErrNotPayable) {
			t.Errorf("Checkout(%s) = %v, want ErrNotPayable", id, err)
		}
	}
}

func TestCheckoutValidation(t *testing.T) {
	svc := NewService(newMemStore(), fixtureBookings())
	ctx := context.Background()

	if _, err := svc.Checkout(ctx, CheckoutCommand{Method: MethodUPI}); !errors.Is(err, ErrBadRequest) {
		t.Errorf("missing booking id = %v, want ErrBadRequest", err)
	}
	if _, err := svc.Checkout(ctx, CheckoutCommand{BookingID: "b_requested"}); !errors.Is(err, ErrBadRequest) {
		t.Errorf("missing method = %v, want ErrBadRequest", err)
	}
	if _, err := svc.Checkout(ctx, CheckoutCommand{BookingID: "nope", Method: MethodUPI}); !errors.Is(err, booking.ErrNotFound) {
		t.Errorf("unknown booking = %v, want booking.ErrNotFound", err)
	}
}
