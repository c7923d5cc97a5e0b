package cache

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const handlesRedisKey = "handles"

// HandlesCache maps account handles to ids. Handles are immutable once
// registered, so entries never go stale.
type HandlesCache struct {
	redisClient *redis.Client
}

func NewHandlesCache(options *redis.Options) *HandlesCache {
	return &HandlesCache{
		redisClient: redis.NewClient(options),
	}
}

func (c *HandlesCache) Add(ctx context.Context, handle string, id int64) {
	if c == nil {
		return
	}
	err := c.redisClient.HSet(ctx, handlesRedisKey, handle, id).Err()
	if err != nil {
		log.Errorf("Error caching handle '%s': %v", handle, err)
	}
}

func (c *HandlesCache) Get(ctx context.Context, handle string) (int64, bool) {
	if c == nil {
		return 0, false
	}
	val, err := c.redisClient.HGet(ctx, handlesRedisKey, handle).Result()
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		log.Errorf("Error parsing cached handle '%s': %v", handle, err)
		return 0, false
	}
	return id, true
}
