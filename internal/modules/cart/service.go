// README: Cart service; pure total aggregation plus per-user persistence.
package cart

import (
	"context"
	"errors"
	"fmt"

	"citypass/internal/types"
)

// ErrNegativePrice is returned when a line item carries a negative price.
var ErrNegativePrice = errors.New("line item price must not be negative")

// ComputeTotal sums the cart: subtotal is the plain item sum, total adds the
// fixed fees. It is pure and order-independent. Conditional fees (convenience
// fee on empty carts) must be filtered by the caller beforehand.
func ComputeTotal(items []LineItem, fixedFees []int64) Totals {
	var subtotal int64
	for _, it := range items {
		subtotal += it.Price
	}
	total := subtotal
	for _, f := range fixedFees {
		total += f
	}
	return Totals{Subtotal: subtotal, Total: total}
}

// ValidateItems rejects carts with negatively priced items before they reach
// aggregation or persistence.
func ValidateItems(items []LineItem) error {
	for _, it := range items {
		if it.Price < 0 {
			return fmt.Errorf("%w: %s", ErrNegativePrice, it.ID)
		}
	}
	return nil
}

// Service wraps the cart store with validation.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Get loads the user's cart; a missing key is an empty cart.
func (s *Service) Get(ctx context.Context, userID types.ID) ([]LineItem, error) {
	return s.store.Load(ctx, userID)
}

// Replace overwrites the user's cart with the given selection.
func (s *Service) Replace(ctx context.Context, userID types.ID, items []LineItem) error {
	if err := ValidateItems(items); err != nil {
		return err
	}
	return s.store.Save(ctx, userID, items)
}

// Clear drops the user's cart after a successful checkout.
func (s *Service) Clear(ctx context.Context, userID types.ID) error {
	return s.store.Delete(ctx, userID)
}
