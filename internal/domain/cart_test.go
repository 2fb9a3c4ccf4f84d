package domain

import "testing"

func TestValidSize(t *testing.T) {
	for _, s := range []string{"S", "M", "L", "XL"} {
		if !ValidSize(s) {
			t.Fatalf("%q should be valid", s)
		}
	}
	for _, s := range []string{"", "m", "XS", "XXL", "medium"} {
		if ValidSize(s) {
			t.Fatalf("%q should be invalid", s)
		}
	}
}

func TestCartTotals(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{PriceCents: 1999, Quantity: 2},
		{PriceCents: 500, Quantity: 1},
	}}
	if got := cart.Total(); got != 4498 {
		t.Fatalf("Total() = %d, want 4498", got)
	}
	if got := cart.TotalItems(); got != 3 {
		t.Fatalf("TotalItems() = %d, want 3", got)
	}

	var empty Cart
	if empty.Total() != 0 || empty.TotalItems() != 0 {
		t.Fatalf("empty cart totals must be zero")
	}
}
