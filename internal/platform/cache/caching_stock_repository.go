// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stocktrack/internal/feature/stock/domain/entity"
	"stocktrack/internal/feature/stock/usecase"
)

// CachingStockRepository decorates a StockRepository with Redis caching of
// the two read paths the listing endpoints hit (ListAll and FindByID). It is
// a pure decorator: every mutation goes through to the inner repository and
// then invalidates the namespace, so callers observe the same semantics as
// the uncached repository.
type CachingStockRepository struct {
	inner     usecase.StockRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator satisfies the repository interface.
var _ usecase.StockRepository = (*CachingStockRepository)(nil)

// NewCachingStockRepository decorates a StockRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "stocks". A nil Redis client disables caching entirely.
func NewCachingStockRepository(rdb *redis.Client, ttl time.Duration, inner usecase.StockRepository, namespace string) *CachingStockRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "stocks"
	}
	return &CachingStockRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListAll retrieves the full stock list, checking the cache first and
// falling back to the database.
func (c *CachingStockRepository) ListAll(ctx context.Context) ([]entity.Stock, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListAll(ctx)
	}

	key := c.namespace + ":all"

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Stock
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID retrieves a single stock, checking the cache first and falling
// back to the database. Not-found results are not cached.
func (c *CachingStockRepository) FindByID(ctx context.Context, id uint) (*entity.Stock, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := fmt.Sprintf("%s:id:%d", c.namespace, id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Stock
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindBySymbol is not cached; the portfolio path needs the current record.
func (c *CachingStockRepository) FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	return c.inner.FindBySymbol(ctx, symbol)
}

// Exists is not cached; it guards comment creation and must see fresh state.
func (c *CachingStockRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return c.inner.Exists(ctx, id)
}

// Create persists the stock and invalidates the cached read paths.
func (c *CachingStockRepository) Create(ctx context.Context, stock *entity.Stock) error {
	if err := c.inner.Create(ctx, stock); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update overwrites the stock's mutable fields and invalidates the cached read paths.
func (c *CachingStockRepository) Update(ctx context.Context, id uint, upd usecase.StockUpdate) (*entity.Stock, error) {
	out, err := c.inner.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return out, nil
}

// Delete removes the stock and invalidates the cached read paths.
func (c *CachingStockRepository) Delete(ctx context.Context, id uint) (*entity.Stock, error) {
	out, err := c.inner.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return out, nil
}

// DeleteAll removes every stock and invalidates the cached read paths.
func (c *CachingStockRepository) DeleteAll(ctx context.Context) error {
	if err := c.inner.DeleteAll(ctx); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// invalidate drops every key in the namespace. Best effort: a failed
// invalidation only shortens cache freshness to the TTL.
func (c *CachingStockRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingStockRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
