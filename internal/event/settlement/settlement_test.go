package settlement

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SettlementEventTestSuite struct {
	suite.Suite
	mq mq.MQ
}

func (s *SettlementEventTestSuite) SetupTest() {
	s.mq = memory.NewMQ()
	require.NoError(s.T(), s.mq.CreateTopic(context.Background(), SettledTopic, 1))
}

func (s *SettlementEventTestSuite) TearDownTest() {
	_ = s.mq.Close()
}

func (s *SettlementEventTestSuite) TestProduceAndConsume() {
	t := s.T()
	consumer, err := s.mq.Consumer(SettledTopic, "test-group")
	require.NoError(t, err)
	producer, err := s.mq.Producer(SettledTopic)
	require.NoError(t, err)

	evt := SettledEvent{
		AccountID:    1,
		AccID:        "1001",
		Mobiles:      []string{"13800000001", "13800000002"},
		Units:        4,
		Kind:         2,
		ProviderCode: "aliyun",
		RequestID:    "req-1",
		SettledAt:    time.Now().UnixMilli(),
	}
	require.NoError(t, NewProducer(producer).Produce(t.Context(), evt))

	var got SettledEvent
	c := NewConsumer(consumer, func(_ context.Context, e SettledEvent) error {
		got = e
		return nil
	})
	ctx, cancel := context.WithTimeout(t.Context(), 3*time.Second)
	defer cancel()
	require.NoError(t, c.Consume(ctx))
	assert.Equal(t, evt, got)
}

func (s *SettlementEventTestSuite) TestHandlerError() {
	t := s.T()
	consumer, err := s.mq.Consumer(SettledTopic, "test-group")
	require.NoError(t, err)
	producer, err := s.mq.Producer(SettledTopic)
	require.NoError(t, err)
	require.NoError(t, NewProducer(producer).Produce(t.Context(), SettledEvent{AccountID: 2}))

	mockErr := errors.New("mock handler error")
	c := NewConsumer(consumer, func(context.Context, SettledEvent) error {
		return mockErr
	})
	ctx, cancel := context.WithTimeout(t.Context(), 3*time.Second)
	defer cancel()
	assert.ErrorIs(t, c.Consume(ctx), mockErr)
}

func (s *SettlementEventTestSuite) TestConsumeTimeout() {
	t := s.T()
	consumer, err := s.mq.Consumer(SettledTopic, "test-group")
	require.NoError(t, err)

	c := NewConsumer(consumer, func(context.Context, SettledEvent) error { return nil })
	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()
	assert.Error(t, c.Consume(ctx))
}

func (s *SettlementEventTestSuite) TestStartHandlesUntilCanceled() {
	t := s.T()
	consumer, err := s.mq.Consumer(SettledTopic, "test-group")
	require.NoError(t, err)
	producer, err := s.mq.Producer(SettledTopic)
	require.NoError(t, err)

	got := make(chan SettledEvent, 1)
	c := NewConsumer(consumer, func(_ context.Context, e SettledEvent) error {
		got <- e
		return errors.New("handler 失败不影响后续消费")
	})
	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan struct{})
	go func() {
		c.run(ctx)
		close(done)
	}()

	require.NoError(t, NewProducer(producer).Produce(t.Context(), SettledEvent{AccountID: 3}))
	select {
	case e := <-got:
		assert.Equal(t, int64(3), e.AccountID)
	case <-time.After(3 * time.Second):
		t.Fatal("没有消费到事件")
	}
	cancel()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("ctx 取消后没有退出")
	}
}

func TestSettlementEvent(t *testing.T) {
	suite.Run(t, new(SettlementEventTestSuite))
}

type closedConsumer struct {
	calls atomic.Int64
}

func (c *closedConsumer) Consume(context.Context) (*mq.Message, error) {
	c.calls.Add(1)
	return nil, errors.New("消费者已经关闭")
}

func (c *closedConsumer) ConsumeChan(context.Context) (<-chan *mq.Message, error) {
	return nil, errors.New("消费者已经关闭")
}

func (c *closedConsumer) Close() error {
	return nil
}

func TestConsumer_RunBacksOff(t *testing.T) {
	t.Parallel()
	mc := &closedConsumer{}
	c := NewConsumer(mc, func(context.Context, SettledEvent) error { return nil })
	c.newBackoff = func() retry.Strategy {
		s, err := retry.NewExponentialBackoffRetryStrategy(10*time.Millisecond, 40*time.Millisecond, 0)
		require.NoError(t, err)
		return s
	}

	ctx, cancel := context.WithTimeout(t.Context(), 300*time.Millisecond)
	defer cancel()
	done := make(chan struct{})
	go func() {
		c.run(ctx)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("ctx 结束后没有退出")
	}
	// 10ms 20ms 40ms 40ms ... 300ms 内最多十来次
	calls := mc.calls.Load()
	assert.GreaterOrEqual(t, calls, int64(2))
	assert.LessOrEqual(t, calls, int64(15))
}
