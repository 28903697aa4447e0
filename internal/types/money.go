// README: Common money value object used across modules.
package types

// Money is an integer amount in the currency's major unit (whole rupees).
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Rupees wraps an integer rupee amount in the default currency.
func Rupees(amount int64) Money {
	return Money{Amount: amount, Currency: "INR"}
}
