package cache

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const unreadRedisKey = "unread_counts"

// UnreadCache keeps per-recipient unread notification counters. It is purely
// presentational: the store stays the source of truth and the counter is
// rebuilt from it on a miss.
type UnreadCache struct {
	redisClient *redis.Client
}

func NewUnreadCache(options *redis.Options) *UnreadCache {
	return &UnreadCache{
		redisClient: redis.NewClient(options),
	}
}

func (c *UnreadCache) Incr(ctx context.Context, recipientID int64) {
	c.add(ctx, recipientID, 1)
}

func (c *UnreadCache) Decr(ctx context.Context, recipientID int64) {
	c.add(ctx, recipientID, -1)
}

func (c *UnreadCache) Get(ctx context.Context, recipientID int64) (int64, bool) {
	if c == nil {
		return 0, false
	}
	val, err := c.redisClient.HGet(ctx, unreadRedisKey, field(recipientID)).Result()
	if err != nil {
		return 0, false
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil || count < 0 {
		return 0, false
	}
	return count, true
}

func (c *UnreadCache) Set(ctx context.Context, recipientID, count int64) {
	if c == nil {
		return
	}
	err := c.redisClient.HSet(ctx, unreadRedisKey, field(recipientID), count).Err()
	if err != nil {
		log.Errorf("Error setting unread count for %d: %v", recipientID, err)
	}
}

func (c *UnreadCache) add(ctx context.Context, recipientID, delta int64) {
	if c == nil {
		return
	}
	err := c.redisClient.HIncrBy(ctx, unreadRedisKey, field(recipientID), delta).Err()
	if err != nil {
		log.Errorf("Error updating unread count for %d: %v", recipientID, err)
	}
}

func field(recipientID int64) string {
	return strconv.FormatInt(recipientID, 10)
}
