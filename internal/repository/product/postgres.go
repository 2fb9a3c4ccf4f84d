package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"canvas-store/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectColumns = `id::text, name, COALESCE(description, ''), price_cents, image_url, category, sizes, stock, rating, review_count, created_at`

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

func (r *postgresRepo) List(ctx context.Context, filter Filter, offset, limit int) ([]domain.Product, int, error) {
	where, args := buildWhere(filter)

	countQuery := "SELECT COUNT(*) FROM products" + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.Printf("product repo: count error=%v", err)
		return nil, 0, err
	}

	listQuery := fmt.Sprintf("SELECT %s FROM products%s ORDER BY created_at DESC", selectColumns, where)
	if limit > 0 {
		listQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, 0, err
	}
	defer rows.Close()

	result, err := scanProducts(rows)
	if err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, 0, err
	}
	r.logger.Printf("product repo: list count=%d total=%d", len(result), total)
	return result, total, nil
}

func (r *postgresRepo) Featured(ctx context.Context, limit int) ([]domain.Product, error) {
	// Rating ties break on review count, then recency, so the ordering is stable.
	q := fmt.Sprintf(
		"SELECT %s FROM products ORDER BY rating DESC, review_count DESC, created_at DESC LIMIT $1",
		selectColumns,
	)
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		r.logger.Printf("product repo: featured error=%v", err)
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	q := fmt.Sprintf("SELECT %s FROM products WHERE id = $1", selectColumns)
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.ImageURL, &p.Category,
		&p.Sizes, &p.Stock, &p.Rating, &p.ReviewCount, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func buildWhere(filter Filter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	add := func(clause string, arg interface{}) {
		args = append(args, arg)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if filter.Category != "" {
		add("category = $%d", filter.Category)
	}
	if filter.Size != "" {
		add("$%d = ANY(sizes)", filter.Size)
	}
	if filter.PriceMinCents != nil {
		add("price_cents >= $%d", *filter.PriceMinCents)
	}
	if filter.PriceMaxCents != nil {
		add("price_cents <= $%d", *filter.PriceMaxCents)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		args = append(args, pattern)
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.ImageURL, &p.Category,
			&p.Sizes, &p.Stock, &p.Rating, &p.ReviewCount, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
