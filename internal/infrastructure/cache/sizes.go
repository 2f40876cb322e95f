package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"pixvault/pkg/logger"
)

const sizeKeyPrefix = "objsize:"

// SizeCache is a redis-backed cache of object sizes, letting the signer
// skip repeated HEAD probes for keys it has seen recently. Every failure
// degrades to a miss; the cache never fails a caller.
type SizeCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewSizeCache(cfg Config) (*SizeCache, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Timeout)*time.Millisecond)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &SizeCache{
		redis: rdb,
		ttl:   time.Duration(cfg.TTL) * time.Second,
	}, nil
}

func (c *SizeCache) GetSize(ctx context.Context, key string) (int64, bool) {
	val, err := c.redis.Get(ctx, sizeKeyPrefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("size cache read failed", "key", key, "err", err)
		}

		return 0, false
	}

	size, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}

	return size, true
}

func (c *SizeCache) SetSize(ctx context.Context, key string, size int64) {
	if err := c.redis.Set(ctx, sizeKeyPrefix+key, strconv.FormatInt(size, 10), c.ttl).Err(); err != nil {
		logger.Warn("size cache write failed", "key", key, "err", err)
	}
}

func (c *SizeCache) Close() error {
	return c.redis.Close()
}
