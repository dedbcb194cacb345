package breaker

import (
	"context"
	"fmt"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/errs"
	"gitee.com/flycash/opensms-platform/internal/service/provider"
	"github.com/go-kratos/aegis/circuitbreaker"
	"github.com/go-kratos/aegis/circuitbreaker/sre"
	"github.com/gotomicro/ego/core/elog"
)

const unavailableMessage = "provider unavailable"

// Gateway 供应商持续出错时熔断，熔断期间直接返回 503 且不会扣费
type Gateway struct {
	gateway provider.Gateway
	name    string
	breaker circuitbreaker.CircuitBreaker
	logger  *elog.Component
}

func NewGateway(name string, g provider.Gateway, opts ...sre.Option) *Gateway {
	return &Gateway{
		gateway: g,
		name:    name,
		breaker: sre.NewBreaker(opts...),
		logger:  elog.DefaultLogger,
	}
}

func (g *Gateway) Send(ctx context.Context, sms domain.SMS) (domain.ProviderReply, error) {
	if err := g.breaker.Allow(); err != nil {
		g.logger.Warn("供应商已熔断",
			elog.String("provider", g.name),
			elog.FieldErr(fmt.Errorf("%w: %w", errs.ErrProviderUnavailable, err)))
		return domain.ProviderReply{
			Code:    domain.CodeServiceUnavailable,
			Message: unavailableMessage,
		}, nil
	}
	reply, err := g.gateway.Send(ctx, sms)
	// 供应商明确拒绝说明链路是通的，不计入失败
	if err != nil {
		g.breaker.MarkFailed()
	} else {
		g.breaker.MarkSuccess()
	}
	return reply, err
}
