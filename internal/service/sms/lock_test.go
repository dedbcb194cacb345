//go:build e2e

package sms

import (
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDLockMobileLocker(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer rdb.Close()

	locker := NewDLockMobileLocker(rdb, 5*time.Second, 100*time.Millisecond)
	mobile := fmt.Sprintf("138%08d", time.Now().UnixNano()%100000000)

	unlock, err := locker.TryLock(t.Context(), mobile)
	require.NoError(t, err)

	// 同一个号码第二次加锁失败
	_, err = locker.TryLock(t.Context(), mobile)
	assert.ErrorIs(t, err, ErrMobileLocked)

	unlock()
	unlock2, err := locker.TryLock(t.Context(), mobile)
	require.NoError(t, err)
	unlock2()
}
