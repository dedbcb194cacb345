package tracing

import (
	"context"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/service/provider"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Gateway 为供应商实现添加链路追踪的装饰器
type Gateway struct {
	gateway provider.Gateway
	name    string
	tracer  trace.Tracer
}

// NewGateway 创建一个新的带有链路追踪的供应商
func NewGateway(name string, g provider.Gateway) *Gateway {
	return &Gateway{
		gateway: g,
		name:    name,
		tracer:  otel.Tracer("opensms-platform/provider"),
	}
}

func (g *Gateway) Send(ctx context.Context, sms domain.SMS) (domain.ProviderReply, error) {
	ctx, span := g.tracer.Start(ctx, "Gateway.Send",
		trace.WithAttributes(
			attribute.String("sms.provider", g.name),
			attribute.Int("sms.mobiles", len(sms.Mobiles)),
			attribute.String("sms.suffix", sms.Suffix),
		))
	defer span.End()

	reply, err := g.gateway.Send(ctx, sms)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("sms.reply.code", reply.Code))
		if !reply.Succeeded() {
			span.SetStatus(codes.Error, reply.Message)
		}
	}
	return reply, err
}
