// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/feature/garden/usecase"
)

// CachingPlantRepository decorates a PlantRepository with Redis caching of
// single-plant reads and list pages. Any write drops every cached entry.
type CachingPlantRepository struct {
	inner     usecase.PlantRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.PlantRepository = (*CachingPlantRepository)(nil)

// NewCachingPlantRepository decorates inner. If ttl is 0 it defaults to 5 minutes;
// an empty namespace becomes "plants". A nil rdb disables caching.
func NewCachingPlantRepository(rdb *redis.Client, ttl time.Duration, inner usecase.PlantRepository, namespace string) *CachingPlantRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "plants"
	}
	return &CachingPlantRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: safe(namespace),
	}
}

func (c *CachingPlantRepository) Create(ctx context.Context, p *entity.Plant) error {
	if err := c.inner.Create(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// List serves a page from the cache, falling back to the database.
func (c *CachingPlantRepository) List(ctx context.Context, page usecase.Page) ([]entity.Plant, error) {
	key := fmt.Sprintf("%s:list:%d:%d", c.namespace, page.Offset, page.Limit)
	var out []entity.Plant
	if c.get(ctx, key, &out) {
		return out, nil
	}
	out, err := c.inner.List(ctx, page)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, out)
	return out, nil
}

// FindByID serves a plant from the cache, falling back to the database.
// Misses on the database are not cached.
func (c *CachingPlantRepository) FindByID(ctx context.Context, id uint) (*entity.Plant, error) {
	key := fmt.Sprintf("%s:id:%d", c.namespace, id)
	var cached entity.Plant
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}
	p, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, p)
	return p, nil
}

func (c *CachingPlantRepository) FindByIDs(ctx context.Context, ids []uint) ([]entity.Plant, error) {
	return c.inner.FindByIDs(ctx, ids)
}

func (c *CachingPlantRepository) Count(ctx context.Context) (int64, error) {
	return c.inner.Count(ctx)
}

func (c *CachingPlantRepository) Update(ctx context.Context, id uint, mutate func(*entity.Plant) error) (*entity.Plant, error) {
	p, err := c.inner.Update(ctx, id, mutate)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return p, nil
}

func (c *CachingPlantRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// get reports whether key held a decodable value. Corrupted entries are deleted.
func (c *CachingPlantRepository) get(ctx context.Context, key string, dst any) bool {
	if c.rdb == nil {
		return false
	}
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// set stores v best effort.
func (c *CachingPlantRepository) set(ctx context.Context, key string, v any) {
	if c.rdb == nil {
		return
	}
	if b, err := json.Marshal(v); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
}

func (c *CachingPlantRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.deleteByPattern(ctx, c.namespace+":*"); err != nil {
		slog.Warn("plant cache invalidation failed", "error", err)
	}
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingPlantRepository) deleteByPattern(ctx context.Context, pattern string) error {
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

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
