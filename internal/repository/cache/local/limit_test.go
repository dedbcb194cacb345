package local

import (
	"testing"
	"time"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/repository/cache"
	ca "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitCache(t *testing.T) {
	t.Parallel()
	c := NewLimitCache(ca.New(time.Minute, time.Minute), time.Minute)

	_, err := c.Get(t.Context(), "13800000000")
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)

	entry := domain.LimitEntry{ID: 3, Mobile: "13800000000", Type: domain.LimitTypeBlacklist}
	require.NoError(t, c.Set(t.Context(), entry.Mobile, entry))
	got, err := c.Get(t.Context(), entry.Mobile)
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestLimitCache_Expiration(t *testing.T) {
	t.Parallel()
	c := NewLimitCache(ca.New(time.Minute, time.Minute), 10*time.Millisecond)

	require.NoError(t, c.Set(t.Context(), "13900000000", domain.LimitEntry{}))
	time.Sleep(20 * time.Millisecond)
	_, err := c.Get(t.Context(), "13900000000")
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)
}
