package metrics

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var (
	commandCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_redis_commands_total",
			Help: "Redis 命令执行次数",
		},
		[]string{"command", "status"},
	)
	commandDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "sms_redis_command_duration_seconds",
			Help:       "Redis 命令耗时（秒），管道按整体统计",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"command"},
	)
	dialCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_redis_dials_total",
			Help: "Redis 建立连接次数",
		},
		[]string{"status"},
	)
	registerOnce sync.Once
)

// Hook 统计限制名单缓存、限流脚本和分布式锁用到的 Redis 命令
type Hook struct{}

func NewMetricsHook() *Hook {
	registerOnce.Do(func() {
		prometheus.MustRegister(commandCounter, commandDuration, dialCounter)
	})
	return &Hook{}
}

func statusOf(err error) string {
	// 缓存未命中不算错误
	if err != nil && !errors.Is(err, redis.Nil) {
		return statusError
	}
	return statusSuccess
}

func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		startTime := time.Now()
		err := next(ctx, cmd)
		commandDuration.WithLabelValues(cmd.Name()).Observe(time.Since(startTime).Seconds())
		commandCounter.WithLabelValues(cmd.Name(), statusOf(err)).Inc()
		return err
	}
}

func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		if len(cmds) == 0 {
			return next(ctx, cmds)
		}
		startTime := time.Now()
		err := next(ctx, cmds)
		commandDuration.WithLabelValues("pipeline").Observe(time.Since(startTime).Seconds())
		for _, cmd := range cmds {
			cmdErr := cmd.Err()
			if cmdErr == nil {
				cmdErr = err
			}
			commandCounter.WithLabelValues(cmd.Name(), statusOf(cmdErr)).Inc()
		}
		return err
	}
}

func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		dialCounter.WithLabelValues(statusOf(err)).Inc()
		return conn, err
	}
}

// WithMetrics 为Redis客户端添加指标收集功能
func WithMetrics(client *redis.Client) *redis.Client {
	client.AddHook(NewMetricsHook())
	return client
}
