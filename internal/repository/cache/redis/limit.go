package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/repository/cache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var _ cache.LimitCache = (*LimitCache)(nil)

type LimitCache struct {
	rdb        redis.Cmdable
	expiration time.Duration
}

// NewLimitCache expiration 不大于 0 时使用 cache.DefaultExpiredTime
func NewLimitCache(rdb redis.Cmdable, expiration time.Duration) *LimitCache {
	if expiration <= 0 {
		expiration = cache.DefaultExpiredTime
	}
	return &LimitCache{
		rdb:        rdb,
		expiration: expiration,
	}
}

func (c *LimitCache) Get(ctx context.Context, mobile string) (domain.LimitEntry, error) {
	val, err := c.rdb.Get(ctx, cache.LimitKey(mobile)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// 键不存在
			return domain.LimitEntry{}, cache.ErrKeyNotFound
		}
		return domain.LimitEntry{}, fmt.Errorf("failed to get limit entry from redis %w", err)
	}

	var entry domain.LimitEntry
	if err = json.Unmarshal(val, &entry); err != nil {
		return domain.LimitEntry{}, fmt.Errorf("failed to unmarshal limit entry %w", err)
	}
	return entry, nil
}

func (c *LimitCache) Set(ctx context.Context, mobile string, entry domain.LimitEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal limit entry %w", err)
	}
	err = c.rdb.Set(ctx, cache.LimitKey(mobile), data, c.expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set limit entry to redis %w", err)
	}
	return nil
}
