package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestHook_ProcessHook(t *testing.T) {
	h := NewMetricsHook()
	// 重复创建不会重复注册
	_ = NewMetricsHook()

	ctx := context.Background()
	hit := h.ProcessHook(func(context.Context, redis.Cmder) error { return nil })
	miss := h.ProcessHook(func(context.Context, redis.Cmder) error { return redis.Nil })
	broken := h.ProcessHook(func(context.Context, redis.Cmder) error { return errors.New("conn reset") })

	assert.NoError(t, hit(ctx, redis.NewStringCmd(ctx, "hget", "k", "f")))
	assert.ErrorIs(t, miss(ctx, redis.NewStringCmd(ctx, "hget", "k", "f")), redis.Nil)
	assert.Error(t, broken(ctx, redis.NewStringCmd(ctx, "hget", "k", "f")))

	assert.InDelta(t, 2, testutil.ToFloat64(commandCounter.WithLabelValues("hget", statusSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(commandCounter.WithLabelValues("hget", statusError)), 0)
}

func TestHook_ProcessPipelineHook(t *testing.T) {
	h := NewMetricsHook()
	ctx := context.Background()
	pipe := h.ProcessPipelineHook(func(_ context.Context, cmds []redis.Cmder) error {
		cmds[1].SetErr(errors.New("wrong type"))
		return nil
	})

	err := pipe(ctx, []redis.Cmder{
		redis.NewStatusCmd(ctx, "hset", "k", "f", "v"),
		redis.NewStatusCmd(ctx, "hset", "k2", "f", "v"),
	})
	assert.NoError(t, err)
	assert.InDelta(t, 1, testutil.ToFloat64(commandCounter.WithLabelValues("hset", statusSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(commandCounter.WithLabelValues("hset", statusError)), 0)
}
