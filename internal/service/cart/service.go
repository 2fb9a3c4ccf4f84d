package cart

import (
	"context"
	"errors"
	"fmt"

	"canvas-store/internal/domain"
	cartrepo "canvas-store/internal/repository/cart"
)

// Service owns the cart mutations. All operations are scoped to one user;
// the repository enforces that item ids belong to that user's cart.
type Service struct {
	repo        cartRepo
	productRepo productRepo
}

type cartRepo interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, in cartrepo.AddItemInput) error
	UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int) error
	RemoveItem(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartrepo.Repository, products productRepo) *Service {
	return &Service{repo: repo, productRepo: products}
}

// Get returns the user's cart. A user who has never added an item gets an
// empty cart rather than an error.
func (s *Service) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.Cart{UserID: userID, Items: []domain.CartItem{}}, nil
		}
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return cart, nil
}

// AddItem appends a line item, or increments the existing line matching
// product and size. The product snapshot (name, price, image) is captured
// here and never refreshed afterwards.
func (s *Service) AddItem(ctx context.Context, userID, productID, size string, quantity int) (*domain.Cart, error) {
	if !domain.ValidSize(size) {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid size %q: must be one of S, M, L, XL", size))
	}
	if quantity < 1 {
		return nil, domain.NewValidationError("quantity must be at least 1")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.HasSize(size) {
		return nil, domain.NewValidationError(fmt.Sprintf("product %q is not offered in size %s", product.Name, size))
	}

	if err := s.repo.AddItem(ctx, userID, cartrepo.AddItemInput{
		ProductID:  product.ID,
		Name:       product.Name,
		PriceCents: product.PriceCents,
		ImageURL:   product.ImageURL,
		Size:       size,
		Quantity:   quantity,
	}); err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

// UpdateItem changes a line's quantity. Missing items are domain.ErrNotFound.
func (s *Service) UpdateItem(ctx context.Context, userID, itemID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, domain.NewValidationError("quantity must be at least 1")
	}
	if err := s.repo.UpdateItemQuantity(ctx, userID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// RemoveItem deletes a line. Removing an item that is already gone succeeds.
func (s *Service) RemoveItem(ctx context.Context, userID, itemID string) (*domain.Cart, error) {
	if err := s.repo.RemoveItem(ctx, userID, itemID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// Clear empties the cart, keeping the cart row.
func (s *Service) Clear(ctx context.Context, userID string) (*domain.Cart, error) {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}
