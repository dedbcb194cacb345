package ratelimit

import (
	"context"
	"time"
)

// Decision 一次限流判断的结果
type Decision struct {
	Limited bool
	// Remaining 放行后窗口内还剩的额度
	Remaining int
	// RetryAfter 被限流时，最早的请求滑出窗口还要多久
	RetryAfter time.Duration
}

//go:generate mockgen -source=./types.go -package=limitmocks -destination=./mocks/limiter.mock.go Limiter
type Limiter interface {
	Limit(ctx context.Context, key string) (Decision, error)
}
