package repository

import (
	"context"
	"errors"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/repository/cache"
	"gitee.com/flycash/opensms-platform/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=./limit.go -destination=./mocks/limit.mock.go -package=repomocks LimitRepository
type LimitRepository interface {
	// FindByMobile 不在名单中时返回零值
	FindByMobile(ctx context.Context, mobile string) (domain.LimitEntry, error)
}

// limitRepository 先查本地缓存，再查 redis，最后查数据库
type limitRepository struct {
	dao        dao.LimitDAO
	localCache cache.LimitCache
	redisCache cache.LimitCache
	group      singleflight.Group
	logger     *elog.Component
}

func NewLimitRepository(d dao.LimitDAO, localCache, redisCache cache.LimitCache) LimitRepository {
	return &limitRepository{
		dao:        d,
		localCache: localCache,
		redisCache: redisCache,
		logger:     elog.DefaultLogger,
	}
}

func (r *limitRepository) FindByMobile(ctx context.Context, mobile string) (domain.LimitEntry, error) {
	entry, err := r.localCache.Get(ctx, mobile)
	if err == nil {
		return entry, nil
	}

	entry, err = r.redisCache.Get(ctx, mobile)
	if err == nil {
		_ = r.localCache.Set(ctx, mobile, entry)
		return entry, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		// redis 出问题时直接查库
		r.logger.Warn("从redis获取限制名单失败",
			elog.String("mobile", mobile),
			elog.FieldErr(err))
	}

	val, err, _ := r.group.Do(mobile, func() (any, error) {
		l, err1 := r.dao.FindByMobile(ctx, mobile)
		if err1 != nil {
			return domain.LimitEntry{}, err1
		}
		res := r.toDomain(l)
		if err2 := r.redisCache.Set(ctx, mobile, res); err2 != nil {
			r.logger.Warn("回写redis限制名单失败",
				elog.String("mobile", mobile),
				elog.FieldErr(err2))
		}
		_ = r.localCache.Set(ctx, mobile, res)
		return res, nil
	})
	if err != nil {
		return domain.LimitEntry{}, err
	}
	return val.(domain.LimitEntry), nil
}

func (r *limitRepository) toDomain(l dao.Limit) domain.LimitEntry {
	return domain.LimitEntry{
		ID:      l.ID,
		Mobile:  l.Mobile,
		Type:    domain.LimitType(l.LimitType),
		Remarks: l.Remarks,
		Ctime:   l.Ctime,
		Utime:   l.Utime,
	}
}
