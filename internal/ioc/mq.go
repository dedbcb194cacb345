package ioc

import (
	"context"

	"gitee.com/flycash/opensms-platform/internal/event/settlement"
	"gitee.com/flycash/opensms-platform/internal/pkg/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
)

const settledConsumerGroup = "sms_settled_metrics"

func InitMQ() mq.MQ {
	type Topic struct {
		Name       string `yaml:"name"`
		Partitions int    `yaml:"partitions"`
	}
	topics := []Topic{
		{
			Name:       settlement.SettledTopic,
			Partitions: 1,
		},
	}

	strategy, err := retry.NewRetry(retry.DefaultConfig())
	if err != nil {
		panic(err)
	}
	// 单机部署用内存实现
	q := memory.NewMQ()
	for _, t := range topics {
		err = retry.Do(context.Background(), strategy, func(ctx context.Context) error {
			return q.CreateTopic(ctx, t.Name, t.Partitions)
		})
		if err != nil {
			panic(err)
		}
	}
	return q
}

func InitSettledEventProducer(q mq.MQ) settlement.SettledEventProducer {
	producer, err := q.Producer(settlement.SettledTopic)
	if err != nil {
		panic(err)
	}
	return settlement.NewProducer(producer)
}

func InitSettledEventConsumer(q mq.MQ) *settlement.Consumer {
	consumer, err := q.Consumer(settlement.SettledTopic, settledConsumerGroup)
	if err != nil {
		panic(err)
	}
	return settlement.NewConsumer(consumer, settlement.NewMetricsHandler())
}
