package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"time"

	"canvas-store/internal/domain"
	"github.com/redis/go-redis/v9"
)

const featuredKey = "featured_products"

// FeaturedCache keeps the featured-products listing in Redis for a short
// TTL. Cache errors are logged and reported as misses so the caller always
// falls through to the repository.
type FeaturedCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

// NewFeaturedCache builds a cache around an existing Redis client.
func NewFeaturedCache(client *redis.Client, ttl time.Duration, logger *log.Logger) *FeaturedCache {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &FeaturedCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached listing and whether it was present.
func (c *FeaturedCache) Get(ctx context.Context) ([]domain.Product, bool) {
	data, err := c.client.Get(ctx, featuredKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Printf("featured cache: get error=%v", err)
		}
		return nil, false
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		c.logger.Printf("featured cache: unmarshal error=%v", err)
		return nil, false
	}
	return products, true
}

// Set stores the listing under the configured TTL.
func (c *FeaturedCache) Set(ctx context.Context, products []domain.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		c.logger.Printf("featured cache: marshal error=%v", err)
		return
	}
	if err := c.client.Set(ctx, featuredKey, data, c.ttl).Err(); err != nil {
		c.logger.Printf("featured cache: set error=%v", err)
	}
}
