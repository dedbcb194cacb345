package ioc

import (
	"time"

	"gitee.com/flycash/opensms-platform/internal/repository"
	"gitee.com/flycash/opensms-platform/internal/repository/cache/local"
	"gitee.com/flycash/opensms-platform/internal/repository/cache/redis"
	"gitee.com/flycash/opensms-platform/internal/repository/dao"
	"github.com/gotomicro/ego/core/econf"
	ca "github.com/patrickmn/go-cache"
	goredis "github.com/redis/go-redis/v9"
)

const (
	defaultLocalExpiration = time.Minute
	defaultCleanupInterval = 10 * time.Minute
)

func InitGoCache() *ca.Cache {
	return ca.New(defaultLocalExpiration, defaultCleanupInterval)
}

// InitLimitRepository 本地缓存在前，redis 在后
func InitLimitRepository(d dao.LimitDAO, c *ca.Cache, rdb goredis.Cmdable) repository.LimitRepository {
	expiration := econf.GetDuration("sms.limit.localCacheExpiration")
	if expiration <= 0 {
		expiration = defaultLocalExpiration
	}
	return repository.NewLimitRepository(d,
		local.NewLimitCache(c, expiration),
		redis.NewLimitCache(rdb, econf.GetDuration("sms.limit.redisCacheExpiration")))
}
