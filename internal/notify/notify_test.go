package notify

import (
	"strings"
	"testing"
	"time"

	"canvas-store/internal/domain"
)

func TestNewConfirmation(t *testing.T) {
	created := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	order := &domain.Order{
		ID:         "order-1",
		UserID:     "user-1",
		TotalCents: 4498,
		Status:     domain.OrderStatusConfirmed,
		CreatedAt:  created,
		Items: []domain.OrderItem{
			{ProductName: "Classic Cotton T-Shirt", Size: "M", Quantity: 2, PriceCents: 1999},
			{ProductName: "Leather Belt", Size: "L", Quantity: 1, PriceCents: 500},
		},
	}
	user := &domain.User{ID: "user-1", Email: "ada@example.com", Name: "Ada"}

	msg := NewConfirmation(order, user)

	if msg.Subject != "Order Confirmation - Canvas #order-1" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if msg.Email != "ada@example.com" || msg.OrderID != "order-1" || msg.TotalCents != 4498 {
		t.Fatalf("unexpected envelope fields: %+v", msg)
	}
	if msg.CreatedAt != "March 14, 2026" {
		t.Fatalf("unexpected date %q", msg.CreatedAt)
	}

	for _, want := range []string{
		"Hi Ada,",
		"Order ID: order-1",
		"Status: Confirmed",
		"Classic Cotton T-Shirt (size M) x2 @ $19.99 = $39.98",
		"Leather Belt (size L) x1 @ $5.00 = $5.00",
		"Total Amount: $44.98",
	} {
		if !strings.Contains(msg.Body, want) {
			t.Fatalf("body missing %q:\n%s", want, msg.Body)
		}
	}
}

func TestFormatCents(t *testing.T) {
	cases := map[int64]string{
		0:    "$0.00",
		5:    "$0.05",
		500:  "$5.00",
		1999: "$19.99",
		4498: "$44.98",
	}
	for cents, want := range cases {
		if got := formatCents(cents); got != want {
			t.Fatalf("formatCents(%d) = %q, want %q", cents, got, want)
		}
	}
}
