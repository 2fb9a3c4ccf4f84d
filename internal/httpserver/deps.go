package httpserver

import (
	"context"

	"canvas-store/internal/domain"
	"canvas-store/internal/service/catalog"
)

// The handler layer depends on narrow service interfaces so tests can stub
// them without a database.

type CatalogService interface {
	List(ctx context.Context, in catalog.ListInput) (*catalog.ListResult, error)
	Featured(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, q string) ([]domain.Product, error)
	ByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

type CartService interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, productID, size string, quantity int) (*domain.Cart, error)
	UpdateItem(ctx context.Context, userID, itemID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID string) (*domain.Cart, error)
	Clear(ctx context.Context, userID string) (*domain.Cart, error)
}

type OrderService interface {
	Checkout(ctx context.Context, userID string) (*domain.Order, error)
	Get(ctx context.Context, orderID, requesterID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type AccountService interface {
	Register(ctx context.Context, email, password, name string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, name string) (*domain.User, error)
	AccessTTLSeconds() int
}

// Deps bundles the services the router needs.
type Deps struct {
	CatalogSvc CatalogService
	CartSvc    CartService
	OrderSvc   OrderService
	AccountSvc AccountService
}
