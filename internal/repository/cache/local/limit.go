package local

import (
	"context"
	"time"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/repository/cache"
	ca "github.com/patrickmn/go-cache"
)

var _ cache.LimitCache = (*LimitCache)(nil)

// LimitCache 进程内缓存，过期时间比 redis 短，名单变更后最多延迟 expiration 生效
type LimitCache struct {
	c          *ca.Cache
	expiration time.Duration
}

func NewLimitCache(c *ca.Cache, expiration time.Duration) *LimitCache {
	return &LimitCache{
		c:          c,
		expiration: expiration,
	}
}

func (l *LimitCache) Get(_ context.Context, mobile string) (domain.LimitEntry, error) {
	v, ok := l.c.Get(cache.LimitKey(mobile))
	if !ok {
		return domain.LimitEntry{}, cache.ErrKeyNotFound
	}
	entry, ok := v.(domain.LimitEntry)
	if !ok {
		return domain.LimitEntry{}, cache.ErrKeyNotFound
	}
	return entry, nil
}

func (l *LimitCache) Set(_ context.Context, mobile string, entry domain.LimitEntry) error {
	l.c.Set(cache.LimitKey(mobile), entry, l.expiration)
	return nil
}
