package product

import (
	"context"

	"canvas-store/internal/domain"
)

// Filter narrows a catalog listing. Zero values mean "no constraint".
// Price bounds are inclusive, in cents.
type Filter struct {
	Category      string
	Size          string
	PriceMinCents *int64
	PriceMaxCents *int64
	Search        string
}

type Repository interface {
	// List returns the matching page plus the total matching count. A
	// non-positive limit disables pagination and returns every match.
	List(ctx context.Context, filter Filter, offset, limit int) ([]domain.Product, int, error)
	Featured(ctx context.Context, limit int) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}
