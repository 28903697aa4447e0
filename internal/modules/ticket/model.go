// README: Metro ticket record and trip types.
package ticket

import "citypass/internal/types"

// TripType distinguishes one-way tickets from round trips.
type TripType string

const (
	TripOneWay TripType = "one_way"
	TripTwoWay TripType = "two_way"
)

// HistoryLimit bounds the per-user recent-ticket list. Older entries are
// dropped on overflow.
const HistoryLimit = 5

// Ticket is an immutable trip record created at booking confirmation.
type Ticket struct {
	ID        string      `json:"id"`
	From      types.ID    `json:"from"`
	To        types.ID    `json:"to"`
	Fare      types.Money `json:"fare"`
	Type      TripType    `json:"type"`
	IssuedAt  int64       `json:"issued_at"` // epoch milliseconds
	QRPayload string      `json:"qr_payload"`
}
