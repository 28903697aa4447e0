// README: Fare tariff definition for metro trips.
package fare

// Tariff holds the pricing rule applied to a metro trip: a flat base plus a
// per-stop increment, with a multiplier for round trips.
type Tariff struct {
	BaseFare        int64
	PerStop         int64
	RoundTripFactor float64
	Currency        string
}

// DefaultTariff is the tariff in force when no override row exists in the store.
func DefaultTariff() Tariff {
	return Tariff{
		BaseFare:        15,
		PerStop:         2,
		RoundTripFactor: 1.8,
		Currency:        "INR",
	}
}

// Quote is the result of pricing one trip.
type Quote struct {
	Stops     int   `json:"stops"`
	RoundTrip bool  `json:"round_trip"`
	Amount    int64 `json:"amount"`
	Currency  string `json:"currency"`
}
