package settlement

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=../mocks/settled_event_producer.mock.go SettledEventProducer
type SettledEventProducer interface {
	Produce(ctx context.Context, evt SettledEvent) error
}

type Producer struct {
	producer mq.Producer
}

func NewProducer(producer mq.Producer) *Producer {
	return &Producer{producer: producer}
}

func (p *Producer) Produce(ctx context.Context, evt SettledEvent) error {
	evtStr, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("序列化topic的消息失败 %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{
		Topic: SettledTopic,
		Value: evtStr,
	})
	return err
}
