package ratelimit

import (
	"context"
	_ "embed"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	//go:embed lua/slide_window.lua
	slidingWindowScript string

	_ Limiter = (*RedisSlidingWindowLimiter)(nil)
)

type RedisSlidingWindowLimiter struct {
	cmd       redis.Cmdable
	interval  time.Duration
	rate      int
	keyPrefix string
	seq       atomic.Int64
	now       func() time.Time
}

type Option func(l *RedisSlidingWindowLimiter)

// WithKeyPrefix 多个服务共用一个 redis 时区分 key
func WithKeyPrefix(prefix string) Option {
	return func(l *RedisSlidingWindowLimiter) {
		l.keyPrefix = prefix
	}
}

// NewRedisSlidingWindowLimiter interval 内最多 rate 个请求
func NewRedisSlidingWindowLimiter(cmd redis.Cmdable, interval time.Duration, rate int, opts ...Option) *RedisSlidingWindowLimiter {
	l := &RedisSlidingWindowLimiter{
		cmd:       cmd,
		interval:  interval,
		rate:      rate,
		keyPrefix: "ratelimit",
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (r *RedisSlidingWindowLimiter) Limit(ctx context.Context, key string) (Decision, error) {
	now := r.now()
	// 同一毫秒内的请求也要算作不同的成员
	member := fmt.Sprintf("%d:%d", now.UnixNano(), r.seq.Add(1))
	res, err := r.cmd.Eval(ctx, slidingWindowScript,
		[]string{r.windowKey(key)},
		r.interval.Milliseconds(),
		r.rate,
		now.UnixMilli(),
		member,
	).Int64Slice()
	if err != nil {
		return Decision{}, err
	}
	return parseDecision(res)
}

func (r *RedisSlidingWindowLimiter) windowKey(key string) string {
	return fmt.Sprintf("%s:window:%s", r.keyPrefix, key)
}

func parseDecision(res []int64) (Decision, error) {
	if len(res) != 3 {
		return Decision{}, fmt.Errorf("限流脚本返回值异常: %v", res)
	}
	return Decision{
		Limited:    res[0] == 1,
		Remaining:  int(res[1]),
		RetryAfter: time.Duration(max(res[2], 0)) * time.Millisecond,
	}, nil
}
