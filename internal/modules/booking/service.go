// README: Booking service implements checkout, state transitions and audit events.
package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"citypass/internal/modules/cart"
	"citypass/internal/types"
)

var (
	ErrInvalidState = errors.New("invalid booking state transition")
	ErrNotFound     = errors.New("booking not found")
	ErrConflict     = errors.New("booking state conflict")
	ErrBadRequest   = errors.New("bad request")
)

// Store is the persistence contract for bookings. The pgx implementation
// lives in store.go; tests use an in-memory fake with the same CAS semantics.
type Store interface {
	Create(ctx context.Context, b *Booking) error
	Get(ctx context.Context, id types.ID) (*Booking, error)
	ListByUser(ctx context.Context, userID types.ID) ([]Booking, error)
	// UpdateStatus transitions id from (from, version) to to; it reports
	// false when the compare-and-swap misses.
	UpdateStatus(ctx context.Context, id types.ID, from, to Status, version int, reason *string) (bool, error)
	AppendEvent(ctx context.Context, e *Event) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	UserID          types.ID
	Items           []cart.LineItem
	ConsultationFee int64
	ScheduledAt     *time.Time
}

type ConfirmCommand struct {
	BookingID types.ID
}

type StartCommand struct {
	BookingID types.ID
}

type CompleteCommand struct {
	BookingID types.ID
}

type CancelCommand struct {
	BookingID types.ID
	ActorType string
	Reason    string
}

// Create prices the cart and persists a new booking in the requested state.
// The convenience fee is suppressed for empty carts; a booking with neither
// items nor a consultation charge has nothing to fulfil and is rejected.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (types.ID, error) {
	if cmd.UserID == "" || cmd.ConsultationFee < 0 {
		return "", ErrBadRequest
	}
	if len(cmd.Items) == 0 && cmd.ConsultationFee == 0 {
		return "", ErrBadRequest
	}
	if err := cart.ValidateItems(cmd.Items); err != nil {
		return "", ErrBadRequest
	}

	var convenienceFee int64
	if len(cmd.Items) > 0 {
		convenienceFee = cart.DefaultConvenienceFee
	}
	fees := []int64{convenienceFee}
	if cmd.ConsultationFee > 0 {
		fees = append(fees, cmd.ConsultationFee)
	}
	totals := cart.ComputeTotal(cmd.Items, fees)

	id := types.ID(uuid.NewString())
	now := time.Now()
	b := &Booking{
		ID:              id,
		UserID:          cmd.UserID,
		Items:           cmd.Items,
		Subtotal:        totals.Subtotal,
		ConvenienceFee:  convenienceFee,
		ConsultationFee: cmd.ConsultationFee,
		Total:           types.Rupees(totals.Total),
		Status:          StatusRequested,
		StatusVersion:   0,
		ScheduledAt:     cmd.ScheduledAt,
		CreatedAt:       now,
	}
	if err := s.store.Create(ctx, b); err != nil {
		return "", err
	}
	_ = s.store.AppendEvent(ctx, &Event{
		BookingID:  id,
		FromStatus: StatusNone,
		ToStatus:   StatusRequested,
		ActorType:  "customer",
		ActorID:    &cmd.UserID,
		CreatedAt:  now,
	})
	return id, nil
}

func (s *Service) Confirm(ctx context.Context, cmd ConfirmCommand) error {
	return s.transition(ctx, cmd.BookingID, StatusConfirmed, "provider", nil)
}

func (s *Service) Start(ctx context.Context, cmd StartCommand) error {
	return s.transition(ctx, cmd.BookingID, StatusInProgress, "provider", nil)
}

func (s *Service) Complete(ctx context.Context, cmd CompleteCommand) error {
	return s.transition(ctx, cmd.BookingID, StatusCompleted, "provider", nil)
}

func (s *Service) Cancel(ctx context.Context, cmd CancelCommand) error {
	reason := cmd.Reason
	return s.transition(ctx, cmd.BookingID, StatusCancelled, cmd.ActorType, &reason)
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Booking, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID types.ID) ([]Booking, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *Service) transition(ctx context.Context, id types.ID, to Status, actorType string, reason *string) error {
	b, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CanTransition(b.Status, to) {
		return ErrInvalidState
	}
	ok, err := s.store.UpdateStatus(ctx, b.ID, b.Status, to, b.StatusVersion, reason)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConflict
	}
	var actorID *types.ID
	if actorType == "customer" {
		actorID = &b.UserID
	}
	_ = s.store.AppendEvent(ctx, &Event{
		BookingID:  b.ID,
		FromStatus: b.Status,
		ToStatus:   to,
		ActorType:  actorType,
		ActorID:    actorID,
		CreatedAt:  time.Now(),
	})
	return nil
}
