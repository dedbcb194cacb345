package throttle

import (
	"context"
	"fmt"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/errs"
	"gitee.com/flycash/opensms-platform/internal/service/provider"
	"golang.org/x/time/rate"
)

// Gateway 限制发往单个供应商的 QPS，超过时排队等待，直到 ctx 结束
type Gateway struct {
	gateway provider.Gateway
	limiter *rate.Limiter
}

// NewGateway qps 是每秒请求数，允许 qps 大小的突发
func NewGateway(g provider.Gateway, qps int) *Gateway {
	return &Gateway{
		gateway: g,
		limiter: rate.NewLimiter(rate.Limit(qps), qps),
	}
}

func (g *Gateway) Send(ctx context.Context, sms domain.SMS) (domain.ProviderReply, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return domain.ProviderReply{}, fmt.Errorf("%w: %w", errs.ErrRateLimited, err)
	}
	return g.gateway.Send(ctx, sms)
}
