// README: Payment record for booking checkout.
package payment

import (
	"time"

	"citypass/internal/types"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Method is the customer-selected payment instrument. The gateway itself is
// an external dependency; only the outcome is recorded here.
type Method string

const (
	MethodUPI    Method = "upi"
	MethodCard   Method = "card"
	MethodWallet Method = "wallet"
	MethodCash   Method = "cash"
)

type Payment struct {
	ID        types.ID    `json:"id"`
	BookingID types.ID    `json:"booking_id"`
	Amount    types.Money `json:"amount"`
	Method    Method      `json:"method"`
	Status    Status      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
