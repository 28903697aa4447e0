// README: Cart aggregation tests (sums, fees, ordering invariance).
package cart

import (
	"errors"
	"testing"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name      string
		items     []LineItem
		fixedFees []int64
		want      Totals
	}{
		{
			name:      "empty cart no fees",
			items:     nil,
			fixedFees: nil,
			want:      Totals{Subtotal: 0, Total: 0},
		},
		{
			name: "cleaning cart with convenience fee",
			items: []LineItem{
				{ID: "svc-1", Title: "Bathroom deep clean", Category: "cleaning", Price: 80, IsMain: true},
				{ID: "svc-2", Title: "Kitchen deep clean", Category: "cleaning", Price: 80},
				{ID: "svc-3", Title: "Full home dusting", Category: "cleaning", Price: 150},
			},
			fixedFees: []int64{49},
			want:      Totals{Subtotal: 310, Total: 359}, // 80+80+150 = 310; +49
		},
		{
			name: "consultation charge stacked on convenience fee",
			items: []LineItem{
				{ID: "svc-9", Title: "2BHK inspection", Category: "real_estate", Price: 500, IsMain: true},
			},
			fixedFees: []int64{49, 199},
			want:      Totals{Subtotal: 500, Total: 748},
		},
		{
			name:      "fees alone",
			items:     []LineItem{},
			fixedFees: []int64{199},
			want:      Totals{Subtotal: 0, Total: 199},
		},
		{
			name: "free item",
			items: []LineItem{
				{ID: "svc-0", Title: "First visit", Category: "cleaning", Price: 0},
			},
			want: Totals{Subtotal: 0, Total: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotal(tt.items, tt.fixedFees)
			if got != tt.want {
				t.Errorf("ComputeTotal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestComputeTotalOrderInvariant verifies the sum ignores item ordering.
func TestComputeTotalOrderInvariant(t *testing.T) {
	items := []LineItem{
		{ID: "a", Price: 80},
		{ID: "b", Price: 80},
		{ID: "c", Price: 150},
	}
	reversed := []LineItem{items[2], items[1], items[0]}

	if ComputeTotal(items, []int64{49}) != ComputeTotal(reversed, []int64{49}) {
		t.Error("ComputeTotal must be invariant under item reordering")
	}
}

func TestValidateItems(t *testing.T) {
	ok := []LineItem{{ID: "a", Price: 0}, {ID: "b", Price: 10}}
	if err := ValidateItems(ok); err != nil {
		t.Errorf("ValidateItems(ok) = %v, want nil", err)
	}

	bad := []LineItem{{ID: "a", Price: 10}, {ID: "b", Price: -1}}
	if err := ValidateItems(bad); !errors.Is(err, ErrNegativePrice) {
		t.Errorf("ValidateItems(bad) = %v, want ErrNegativePrice", err)
	}
}
