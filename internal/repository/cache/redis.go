package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rohitkr5850/storefront/internal/domain"
)

const searchKeysSet = "catalog:search:cache_keys"

// SearchCache caches filtered catalog views in Redis. Every cached page key
// is tracked in a SET so a vendor product mutation can invalidate all views
// at once.
type SearchCache struct {
	client           *redis.Client
	searchResultsTTL time.Duration
}

// NewSearchCache creates a new Redis search cache instance
func NewSearchCache(client *redis.Client, searchResultsTTL time.Duration) *SearchCache {
	return &SearchCache{
		client:           client,
		searchResultsTTL: searchResultsTTL,
	}
}

func (c *SearchCache) searchKey(filter domain.ProductFilter) string {
	minPrice, maxPrice, rating := "", "", ""
	if filter.MinPrice != nil {
		minPrice = fmt.Sprintf("%g", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		maxPrice = fmt.Sprintf("%g", *filter.MaxPrice)
	}
	if filter.Rating != nil {
		rating = fmt.Sprintf("%g", *filter.Rating)
	}
	return fmt.Sprintf("catalog:search:q=%s:cat=%s:min=%s:max=%s:rating=%s:sort=%s",
		filter.Search, filter.Category, minPrice, maxPrice, rating, filter.SortBy)
}

// GetSearchResults retrieves a cached catalog view for a filter
func (c *SearchCache) GetSearchResults(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	key := c.searchKey(filter)
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var products []*domain.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, err
	}

	return products, nil
}

// SetSearchResults stores a catalog view in cache and tracks the key in a SET
func (c *SearchCache) SetSearchResults(ctx context.Context, filter domain.ProductFilter, products []*domain.Product) error {
	key := c.searchKey(filter)

	data, err := json.Marshal(products)
	if err != nil {
		return err
	}

	pipe := c.client.Pipeline()
	pipe.Set(ctx, key, data, c.searchResultsTTL)
	pipe.SAdd(ctx, searchKeysSet, key)
	pipe.Expire(ctx, searchKeysSet, c.searchResultsTTL)
	_, err = pipe.Exec(ctx)
	return err
}

// InvalidateSearchResults removes all cached catalog views using SET-based tracking
func (c *SearchCache) InvalidateSearchResults(ctx context.Context) error {
	keys, err := c.client.SMembers(ctx, searchKeysSet).Result()
	if err != nil && err != redis.Nil {
		return err
	}

	if len(keys) > 0 {
		keys = append(keys, searchKeysSet)
		return c.client.Unlink(ctx, keys...).Err()
	}

	return nil
}
