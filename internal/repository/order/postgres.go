package order

import (
	"context"
	"errors"
	"io"
	"log"

	"canvas-store/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	order := domain.Order{
		UserID:     in.UserID,
		TotalCents: in.TotalCents,
		Status:     in.Status,
	}
	err = tx.QueryRow(ctx, `
INSERT INTO orders (user_id, total_cents, status)
VALUES ($1, $2, $3)
RETURNING id::text, created_at
`, in.UserID, in.TotalCents, in.Status).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		r.logger.Printf("order repo: create user_id=%s error=%v", in.UserID, err)
		return nil, err
	}

	for pos, item := range in.Items {
		var saved domain.OrderItem
		err = tx.QueryRow(ctx, `
INSERT INTO order_items (order_id, position, product_id, product_name, size, quantity, price_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id::text
`, order.ID, pos, item.ProductID, item.ProductName, item.Size, item.Quantity, item.PriceCents).Scan(&saved.ID)
		if err != nil {
			r.logger.Printf("order repo: create item order_id=%s error=%v", order.ID, err)
			return nil, err
		}
		saved.OrderID = order.ID
		saved.ProductID = item.ProductID
		saved.ProductName = item.ProductName
		saved.Size = item.Size
		saved.Quantity = item.Quantity
		saved.PriceCents = item.PriceCents
		order.Items = append(order.Items, saved)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s user_id=%s total_cents=%d items=%d", order.ID, order.UserID, order.TotalCents, len(order.Items))
	return &order, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	err := r.pool.QueryRow(ctx, `
SELECT id::text, user_id::text, total_cents, status, created_at
FROM orders
WHERE id = $1
`, id).Scan(&order.ID, &order.UserID, &order.TotalCents, &order.Status, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	items, err := r.fetchItems(ctx, []string{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]
	return &order, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id::text, user_id::text, total_cents, status, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	var ids []string
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.fetchItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

func (r *postgresRepo) fetchItems(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id::text, order_id::text, product_id::text, product_name, size, quantity, price_cents
FROM order_items
WHERE order_id = ANY($1::uuid[])
ORDER BY position ASC
`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]domain.OrderItem)
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Size, &item.Quantity, &item.PriceCents,
		); err != nil {
			return nil, err
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
