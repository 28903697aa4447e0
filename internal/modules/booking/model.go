// README: Booking aggregate and the four-stage job status machine.
package booking

import (
	"time"

	"citypass/internal/modules/cart"
	"citypass/internal/types"
)

type Status string

const (
	StatusNone       Status = "none"
	StatusRequested  Status = "requested"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Booking is one confirmed service order (cleaning, consultation, ...) built
// from a cart selection. Monetary fields are whole rupees.
type Booking struct {
	ID              types.ID        `json:"id"`
	UserID          types.ID        `json:"user_id"`
	Items           []cart.LineItem `json:"items"`
	Subtotal        int64           `json:"subtotal"`
	ConvenienceFee  int64           `json:"convenience_fee"`
	ConsultationFee int64           `json:"consultation_fee"`
	Total           types.Money     `json:"total"`
	Status          Status          `json:"status"`
	StatusVersion   int             `json:"status_version"`
	ScheduledAt     *time.Time      `json:"scheduled_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	ConfirmedAt     *time.Time      `json:"confirmed_at,omitempty"`
	StartedAt       *time.Time      `json:"started_at,omitempty"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty"`
	CancelReason    *string         `json:"cancel_reason,omitempty"`
}

// Event is one entry in the booking status audit trail.
type Event struct {
	ID         int64
	BookingID  types.ID
	FromStatus Status
	ToStatus   Status
	ActorType  string
	ActorID    *types.ID
	CreatedAt  time.Time
}

// AllowedTransitions encodes the linear job stepper as a transition table.
// Cancellation is only reachable before work starts.
var AllowedTransitions = map[Status][]Status{
	StatusRequested:  {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}
