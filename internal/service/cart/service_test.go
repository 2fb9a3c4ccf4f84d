package cart

import (
	"context"
	"errors"
	"testing"

	"canvas-store/internal/domain"
	cartrepo "canvas-store/internal/repository/cart"
)

type stubCartRepo struct {
	cart        *domain.Cart
	getErr      error
	addErr      error
	updateErr   error
	removeErr   error
	clearErr    error
	lastAdd     *cartrepo.AddItemInput
	lastUpdate  struct{ itemID string; quantity int }
	removedItem string
	cleared     bool
}

func (s *stubCartRepo) GetByUser(_ context.Context, _ string) (*domain.Cart, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.cart, nil
}

func (s *stubCartRepo) AddItem(_ context.Context, _ string, in cartrepo.AddItemInput) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.lastAdd = &in
	return nil
}

func (s *stubCartRepo) UpdateItemQuantity(_ context.Context, _, itemID string, quantity int) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.lastUpdate.itemID = itemID
	s.lastUpdate.quantity = quantity
	return nil
}

func (s *stubCartRepo) RemoveItem(_ context.Context, _, itemID string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	s.removedItem = itemID
	return nil
}

func (s *stubCartRepo) Clear(_ context.Context, _ string) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.cleared = true
	return nil
}

type stubProductRepo struct {
	product *domain.Product
	err     error
}

func (s *stubProductRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.err
}

func TestGetMissingCartReturnsEmpty(t *testing.T) {
	svc := &Service{repo: &stubCartRepo{getErr: domain.ErrNotFound}, productRepo: &stubProductRepo{}}

	cart, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.UserID != "user-1" || len(cart.Items) != 0 {
		t.Fatalf("expected empty cart for user-1, got %+v", cart)
	}
	if cart.Total() != 0 || cart.TotalItems() != 0 {
		t.Fatalf("empty cart must have zero totals")
	}
}

func TestAddItemInvalidSize(t *testing.T) {
	repo := &stubCartRepo{}
	svc := &Service{repo: repo, productRepo: &stubProductRepo{}}

	_, err := svc.AddItem(context.Background(), "user-1", "p1", "XXL", 1)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.lastAdd != nil {
		t.Fatalf("repo must not be touched on invalid size")
	}
}

func TestAddItemInvalidQuantity(t *testing.T) {
	svc := &Service{repo: &stubCartRepo{}, productRepo: &stubProductRepo{}}

	_, err := svc.AddItem(context.Background(), "user-1", "p1", "M", 0)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := &Service{repo: &stubCartRepo{}, productRepo: &stubProductRepo{err: domain.ErrNotFound}}

	_, err := svc.AddItem(context.Background(), "user-1", "missing", "M", 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddItemSizeNotOffered(t *testing.T) {
	repo := &stubCartRepo{}
	products := &stubProductRepo{product: &domain.Product{
		ID:    "p1",
		Name:  "Summer Dress",
		Sizes: []string{"S", "M"},
	}}
	svc := &Service{repo: repo, productRepo: products}

	// XL is a valid size, just not one this product comes in.
	_, err := svc.AddItem(context.Background(), "user-1", "p1", "XL", 1)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.lastAdd != nil {
		t.Fatalf("repo must not be touched for an unoffered size")
	}
}

func TestAddItemCapturesSnapshot(t *testing.T) {
	repo := &stubCartRepo{cart: &domain.Cart{
		ID:     "cart-1",
		UserID: "user-1",
		Items: []domain.CartItem{
			{ID: "i1", ProductID: "p1", Name: "Classic Cotton T-Shirt", PriceCents: 1999, Size: "M", Quantity: 2},
		},
	}}
	products := &stubProductRepo{product: &domain.Product{
		ID:         "p1",
		Name:       "Classic Cotton T-Shirt",
		PriceCents: 1999,
		ImageURL:   "https://img.example/tshirt.jpg",
		Sizes:      []string{"S", "M", "L"},
	}}
	svc := &Service{repo: repo, productRepo: products}

	cart, err := svc.AddItem(context.Background(), "user-1", "p1", "M", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastAdd == nil {
		t.Fatalf("expected repo add call")
	}
	if repo.lastAdd.Name != "Classic Cotton T-Shirt" || repo.lastAdd.PriceCents != 1999 || repo.lastAdd.ImageURL != "https://img.example/tshirt.jpg" {
		t.Fatalf("snapshot not captured from product: %+v", repo.lastAdd)
	}
	if cart.Total() != 3998 || cart.TotalItems() != 2 {
		t.Fatalf("unexpected totals: total=%d items=%d", cart.Total(), cart.TotalItems())
	}
}

func TestUpdateItemInvalidQuantity(t *testing.T) {
	svc := &Service{repo: &stubCartRepo{}, productRepo: &stubProductRepo{}}

	_, err := svc.UpdateItem(context.Background(), "user-1", "i1", 0)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateItemMissing(t *testing.T) {
	svc := &Service{repo: &stubCartRepo{updateErr: domain.ErrNotFound}, productRepo: &stubProductRepo{}}

	_, err := svc.UpdateItem(context.Background(), "user-1", "ghost", 3)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateItem(t *testing.T) {
	repo := &stubCartRepo{cart: &domain.Cart{UserID: "user-1", Items: []domain.CartItem{
		{ID: "i1", PriceCents: 500, Quantity: 3},
	}}}
	svc := &Service{repo: repo, productRepo: &stubProductRepo{}}

	cart, err := svc.UpdateItem(context.Background(), "user-1", "i1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastUpdate.itemID != "i1" || repo.lastUpdate.quantity != 3 {
		t.Fatalf("unexpected update call: %+v", repo.lastUpdate)
	}
	if cart.Total() != 1500 {
		t.Fatalf("unexpected total %d", cart.Total())
	}
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	repo := &stubCartRepo{cart: &domain.Cart{UserID: "user-1", Items: []domain.CartItem{}}}
	svc := &Service{repo: repo, productRepo: &stubProductRepo{}}

	cart, err := svc.RemoveItem(context.Background(), "user-1", "already-gone")
	if err != nil {
		t.Fatalf("removing an absent item must succeed, got %v", err)
	}
	if repo.removedItem != "already-gone" {
		t.Fatalf("unexpected remove call %q", repo.removedItem)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestClear(t *testing.T) {
	repo := &stubCartRepo{cart: &domain.Cart{UserID: "user-1", Items: []domain.CartItem{}}}
	svc := &Service{repo: repo, productRepo: &stubProductRepo{}}

	cart, err := svc.Clear(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.cleared {
		t.Fatalf("expected clear call")
	}
	if cart.TotalItems() != 0 {
		t.Fatalf("cart not empty after clear")
	}
}
