// Package cache holds the best-effort redis layer for customer menu reads.
// It is never load-bearing: every method degrades to a miss or a no-op on
// redis failure, and a nil *DishCache disables caching entirely.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/NecoOcean/sky-take-out/entity"
)

const dishKeyPrefix = "dish_"

type DishCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewDishCache(rdb *redis.Client, log *zap.Logger) *DishCache {
	return &DishCache{rdb: rdb, ttl: 30 * time.Minute, log: log}
}

func key(categoryID uint) string { return fmt.Sprintf("%s%d", dishKeyPrefix, categoryID) }

func (c *DishCache) Get(ctx context.Context, categoryID uint) ([]entity.Dish, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key(categoryID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("dish cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var dishes []entity.Dish
	if err := json.Unmarshal(raw, &dishes); err != nil {
		return nil, false
	}
	return dishes, true
}

func (c *DishCache) Set(ctx context.Context, categoryID uint, dishes []entity.Dish) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(dishes)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(categoryID), raw, c.ttl).Err(); err != nil {
		c.log.Warn("dish cache write failed", zap.Error(err))
	}
}

func (c *DishCache) Invalidate(ctx context.Context, categoryIDs ...uint) {
	if c == nil || len(categoryIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		keys = append(keys, key(id))
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("dish cache invalidate failed", zap.Error(err))
	}
}

// InvalidateAll drops every cached dish list. Used when a mutation's reach
// is hard to pin down (cascades, batch deletes).
func (c *DishCache) InvalidateAll(ctx context.Context) {
	if c == nil {
		return
	}
	keys, err := c.rdb.Keys(ctx, dishKeyPrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("dish cache invalidate failed", zap.Error(err))
	}
}
