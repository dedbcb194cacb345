package middleware

import (
	"net/http"
	"strconv"
	"time"

	"gitee.com/flycash/opensms-platform/internal/pkg/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// RateLimitBuilder 按客户端 IP 限流
type RateLimitBuilder struct {
	prefix     string
	limiter    ratelimit.Limiter
	retryAfter time.Duration
	logger     *elog.Component
}

// NewRateLimitBuilder limiter 为 nil 时不限流，retryAfter 是限流器没给出等待时间时的兜底
func NewRateLimitBuilder(limiter ratelimit.Limiter, retryAfter time.Duration) *RateLimitBuilder {
	if retryAfter <= 0 {
		retryAfter = time.Second
	}
	return &RateLimitBuilder{
		prefix:     "ip-limiter",
		limiter:    limiter,
		retryAfter: retryAfter,
		logger:     elog.DefaultLogger,
	}
}

func (b *RateLimitBuilder) Prefix(prefix string) *RateLimitBuilder {
	b.prefix = prefix
	return b
}

func (b *RateLimitBuilder) Build() gin.HandlerFunc {
	if b.limiter == nil {
		return func(ctx *gin.Context) {
			ctx.Next()
		}
	}
	return func(ctx *gin.Context) {
		d, err := b.limiter.Limit(ctx.Request.Context(), b.prefix+":"+ctx.ClientIP())
		if err != nil {
			// redis 不可用时直接拒绝，避免下游被打爆
			b.logger.Error("限流器出错", elog.FieldErr(err), elog.String("ip", ctx.ClientIP()))
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if d.Limited {
			ctx.Header("Retry-After", strconv.Itoa(b.retryAfterSeconds(d.RetryAfter)))
			ctx.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		ctx.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		ctx.Next()
	}
}

// retryAfterSeconds 向上取整，最少 1 秒
func (b *RateLimitBuilder) retryAfterSeconds(wait time.Duration) int {
	if wait <= 0 {
		wait = b.retryAfter
	}
	return max(int((wait+time.Second-1)/time.Second), 1)
}
