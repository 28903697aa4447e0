// README: Cart line items and totals for the services marketplace.
package cart

// DefaultConvenienceFee is the flat surcharge applied at checkout to a
// non-empty cart. Suppressing it for empty carts is the caller's duty.
const DefaultConvenienceFee int64 = 49

// LineItem is one selectable priced service inside a cart or booking.
// Items are never mutated in place; edits replace the whole collection.
type LineItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	IsMain   bool   `json:"is_main"`
}

// Totals is the aggregation result over a cart.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Total    int64 `json:"total"`
}
