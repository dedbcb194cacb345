package settlement

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

const (
	minConsumeBackoff = 100 * time.Millisecond
	maxConsumeBackoff = 5 * time.Second
)

// Handler 处理一条扣费事件
type Handler func(ctx context.Context, evt SettledEvent) error

// Consumer 消费扣费事件，处理失败只记录日志
type Consumer struct {
	consumer mq.Consumer
	handler  Handler
	logger   *elog.Component
	// newBackoff 拉取消息失败后的退避策略，每次拉取成功都会重新创建
	newBackoff func() retry.Strategy
}

func NewConsumer(consumer mq.Consumer, handler Handler) *Consumer {
	return &Consumer{
		consumer: consumer,
		handler:  handler,
		logger:   elog.DefaultLogger,
		newBackoff: func() retry.Strategy {
			// maxRetries 为 0 表示一直重试
			s, _ := retry.NewExponentialBackoffRetryStrategy(minConsumeBackoff, maxConsumeBackoff, 0)
			return s
		},
	}
}

// Start 异步消费，ctx 结束后退出
func (c *Consumer) Start(ctx context.Context) {
	go c.run(ctx)
}

// run 拉取失败时按指数退避等待，MQ 被关闭后也不会空转
func (c *Consumer) run(ctx context.Context) {
	backoff := c.newBackoff()
	for {
		msg, err := c.consumer.Consume(ctx)
		if ctx.Err() != nil {
			c.logger.Info("扣费事件消费者退出")
			return
		}
		if err != nil {
			wait, _ := backoff.Next()
			c.logger.Error("拉取扣费事件失败",
				elog.Duration("backoff", wait),
				elog.FieldErr(err))
			if !sleepCtx(ctx, wait) {
				c.logger.Info("扣费事件消费者退出")
				return
			}
			continue
		}
		backoff = c.newBackoff()
		if err = c.handle(ctx, msg); err != nil {
			c.logger.Error("处理扣费事件失败", elog.FieldErr(err))
		}
	}
}

// Consume 消费一条消息
func (c *Consumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return err
	}
	return c.handle(ctx, msg)
}

func (c *Consumer) handle(ctx context.Context, msg *mq.Message) error {
	var evt SettledEvent
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		c.logger.Error("反序列化扣费事件失败",
			elog.String("value", string(msg.Value)),
			elog.FieldErr(err))
		return nil
	}
	return c.handler(ctx, evt)
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
