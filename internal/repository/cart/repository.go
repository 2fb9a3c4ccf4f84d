package cart

import (
	"context"

	"canvas-store/internal/domain"
)

// AddItemInput carries the product snapshot captured at add time.
type AddItemInput struct {
	ProductID  string
	Name       string
	PriceCents int64
	ImageURL   string
	Size       string
	Quantity   int
}

type Repository interface {
	// GetByUser returns the user's cart with items, or domain.ErrNotFound
	// when no cart exists yet.
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	// AddItem lazily creates the cart and appends or increments the line
	// matching product and size.
	AddItem(ctx context.Context, userID string, in AddItemInput) error
	// UpdateItemQuantity returns domain.ErrNotFound when the item is not in
	// the user's cart.
	UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int) error
	// RemoveItem is idempotent: removing an absent item is not an error.
	RemoveItem(ctx context.Context, userID, itemID string) error
	// Clear empties the cart's items, keeping the cart row.
	Clear(ctx context.Context, userID string) error
}
