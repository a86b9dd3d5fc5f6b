package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/VenueServices/hall-reservation-api/internal/models"
)

const searchPrefix = "halls:search:"

func NewClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}

// HallCache keeps hall search results hot. Anything that mutates a
// hall must call Invalidate.
type HallCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewHallCache(rdb *redis.Client, ttl time.Duration) *HallCache {
	return &HallCache{rdb: rdb, ttl: ttl}
}

func searchKey(search, category string, minCapacity int) string {
	return fmt.Sprintf("%s%s|%s|%d", searchPrefix, search, category, minCapacity)
}

func (c *HallCache) Get(
	ctx context.Context,
	search, category string,
	minCapacity int,
) ([]models.Hall, bool) {

	raw, err := c.rdb.Get(ctx, searchKey(search, category, minCapacity)).Bytes()
	if err != nil {
		return nil, false
	}

	var halls []models.Hall
	if err := json.Unmarshal(raw, &halls); err != nil {
		return nil, false
	}
	return halls, true
}

func (c *HallCache) Set(
	ctx context.Context,
	search, category string,
	minCapacity int,
	halls []models.Hall,
) {

	raw, err := json.Marshal(halls)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, searchKey(search, category, minCapacity), raw, c.ttl)
}

// Invalidate drops every cached search result. Cache failures are
// swallowed; the database remains the source of truth.
func (c *HallCache) Invalidate(ctx context.Context) {
	iter := c.rdb.Scan(ctx, 0, searchPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
}
