package redis

import (
	"testing"
	"time"

	"gitee.com/flycash/opensms-platform/internal/repository/cache"
	"github.com/stretchr/testify/assert"
)

func TestNewLimitCache_Expiration(t *testing.T) {
	t.Parallel()
	assert.Equal(t, cache.DefaultExpiredTime, NewLimitCache(nil, 0).expiration)
	assert.Equal(t, time.Minute, NewLimitCache(nil, time.Minute).expiration)
}
