package repository

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/repository/cache"
	"gitee.com/flycash/opensms-platform/internal/repository/cache/local"
	"gitee.com/flycash/opensms-platform/internal/repository/dao"
	ca "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLimitDAO struct {
	limits map[string]dao.Limit
	calls  atomic.Int64
	delay  time.Duration
	err    error
}

func (f *fakeLimitDAO) FindByMobile(_ context.Context, mobile string) (dao.Limit, error) {
	f.calls.Add(1)
	time.Sleep(f.delay)
	if f.err != nil {
		return dao.Limit{}, f.err
	}
	return f.limits[mobile], nil
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (domain.LimitEntry, error) {
	return domain.LimitEntry{}, errors.New("redis down")
}

func (brokenCache) Set(context.Context, string, domain.LimitEntry) error {
	return errors.New("redis down")
}

func (brokenCache) Del(context.Context, string) error {
	return errors.New("redis down")
}

func newLocal() cache.LimitCache {
	return local.NewLimitCache(ca.New(time.Minute, time.Minute), time.Minute)
}

func TestLimitRepository_FindByMobile(t *testing.T) {
	t.Parallel()

	t.Run("数据库命中后回写两级缓存", func(t *testing.T) {
		t.Parallel()
		d := &fakeLimitDAO{limits: map[string]dao.Limit{
			"13800000000": {ID: 1, Mobile: "13800000000", LimitType: 2},
		}}
		localCache, redisCache := newLocal(), newLocal()
		repo := NewLimitRepository(d, localCache, redisCache)

		entry, err := repo.FindByMobile(t.Context(), "13800000000")
		require.NoError(t, err)
		assert.True(t, entry.Listed())
		assert.True(t, entry.IsBlacklisted())

		_, err = redisCache.Get(t.Context(), "13800000000")
		assert.NoError(t, err)
		_, err = repo.FindByMobile(t.Context(), "13800000000")
		require.NoError(t, err)
		assert.Equal(t, int64(1), d.calls.Load())
	})

	t.Run("不在名单中也会缓存", func(t *testing.T) {
		t.Parallel()
		d := &fakeLimitDAO{}
		repo := NewLimitRepository(d, newLocal(), newLocal())

		for i := 0; i < 3; i++ {
			entry, err := repo.FindByMobile(t.Context(), "13900000000")
			require.NoError(t, err)
			assert.False(t, entry.Listed())
		}
		assert.Equal(t, int64(1), d.calls.Load())
	})

	t.Run("redis不可用时查库", func(t *testing.T) {
		t.Parallel()
		d := &fakeLimitDAO{limits: map[string]dao.Limit{
			"13700000000": {ID: 2, Mobile: "13700000000", LimitType: 1},
		}}
		repo := NewLimitRepository(d, newLocal(), brokenCache{})

		entry, err := repo.FindByMobile(t.Context(), "13700000000")
		require.NoError(t, err)
		assert.Equal(t, domain.LimitTypeWhitelist, entry.Type)
	})

	t.Run("数据库出错", func(t *testing.T) {
		t.Parallel()
		d := &fakeLimitDAO{err: errors.New("mock db error")}
		repo := NewLimitRepository(d, newLocal(), newLocal())

		_, err := repo.FindByMobile(t.Context(), "13600000000")
		assert.Error(t, err)
	})

	t.Run("并发未命中只查一次库", func(t *testing.T) {
		t.Parallel()
		d := &fakeLimitDAO{delay: 50 * time.Millisecond}
		repo := NewLimitRepository(d, newLocal(), newLocal())

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.FindByMobile(context.Background(), "13500000000")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		assert.LessOrEqual(t, d.calls.Load(), int64(2))
	})
}
