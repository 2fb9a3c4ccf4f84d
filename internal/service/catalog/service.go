package catalog

import (
	"context"
	"strings"

	"canvas-store/internal/domain"
	productrepo "canvas-store/internal/repository/product"
)

// FeaturedLimit is the number of products returned by the featured listing.
const FeaturedLimit = 6

const (
	defaultPage  = 1
	defaultLimit = 10
)

// featuredCache is satisfied by cache.FeaturedCache. A nil cache disables
// caching entirely.
type featuredCache interface {
	Get(ctx context.Context) ([]domain.Product, bool)
	Set(ctx context.Context, products []domain.Product)
}

type Service struct {
	repo  productrepo.Repository
	cache featuredCache
}

func New(repo productrepo.Repository, cache featuredCache) *Service {
	return &Service{repo: repo, cache: cache}
}

// ListInput carries catalog filters plus 1-indexed pagination.
type ListInput struct {
	Filter productrepo.Filter
	Page   int
	Limit  int
}

// ListResult is one page of the catalog plus pagination totals.
type ListResult struct {
	Products []domain.Product
	Total    int
	Pages    int
	Page     int
}

// List applies the filter and returns the requested page, newest first.
func (s *Service) List(ctx context.Context, in ListInput) (*ListResult, error) {
	page := in.Page
	if page < 1 {
		page = defaultPage
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	products, total, err := s.repo.List(ctx, in.Filter, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	return &ListResult{
		Products: products,
		Total:    total,
		Pages:    pages,
		Page:     page,
	}, nil
}

// Featured returns the top products by rating, ties broken by review count
// and then recency. The result is served from the cache when one is wired.
func (s *Service) Featured(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.Get(ctx); ok {
			return products, nil
		}
	}
	products, err := s.repo.Featured(ctx, FeaturedLimit)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	if s.cache != nil {
		s.cache.Set(ctx, products)
	}
	return products, nil
}

// Search matches q case-insensitively against name or description.
func (s *Service) Search(ctx context.Context, q string) ([]domain.Product, error) {
	if strings.TrimSpace(q) == "" {
		return nil, domain.NewValidationError("search query is required")
	}
	products, _, err := s.repo.List(ctx, productrepo.Filter{Search: q}, 0, 0)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// ByCategory returns every product in the category, newest first.
func (s *Service) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	products, _, err := s.repo.List(ctx, productrepo.Filter{Category: category}, 0, 0)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// Get returns a single product or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}
