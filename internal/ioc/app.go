package ioc

import (
	"context"

	"gitee.com/flycash/opensms-platform/internal/event/settlement"
	"github.com/gotomicro/ego/server/egin"
	"go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	Web       *egin.Component
	Consumers []*settlement.Consumer
	Tracer    *trace.TracerProvider
}

func InitConsumers(c *settlement.Consumer) []*settlement.Consumer {
	return []*settlement.Consumer{c}
}

func (a *App) StartConsumers(ctx context.Context) {
	for _, c := range a.Consumers {
		c.Start(ctx)
	}
}
