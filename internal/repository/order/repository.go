package order

import (
	"context"

	"canvas-store/internal/domain"
)

// CreateInput holds the order snapshot to persist. The insert of the order
// row and all its items happens in one transaction.
type CreateInput struct {
	UserID     string
	TotalCents int64
	Status     string
	Items      []domain.OrderItem
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
