// Package metrics 为供应商实现添加指标收集的装饰器
package metrics

import (
	"context"
	"strconv"
	"sync"
	"time"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/service/provider"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sendDurationSummary = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "sms_provider_send_duration_seconds",
			Help:       "供应商发送短信耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"provider", "code"},
	)
	sendCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_provider_send_total",
			Help: "供应商发送短信请求总数",
		},
		[]string{"provider"},
	)
	sendMobileCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_provider_send_mobiles_total",
			Help: "供应商发送短信的手机号数量",
		},
		[]string{"provider", "code"},
	)
	registerOnce sync.Once
)

// 同一个进程会创建多个装饰器，指标只注册一次
func register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(sendDurationSummary, sendCounter, sendMobileCounter)
	})
}

// Gateway 为供应商实现添加指标收集的装饰器
type Gateway struct {
	gateway provider.Gateway
	name    string
}

// NewGateway 创建一个新的带有指标收集的供应商
func NewGateway(name string, g provider.Gateway) *Gateway {
	register()
	return &Gateway{
		gateway: g,
		name:    name,
	}
}

// Send 发送短信并记录指标
func (g *Gateway) Send(ctx context.Context, sms domain.SMS) (domain.ProviderReply, error) {
	startTime := time.Now()
	sendCounter.WithLabelValues(g.name).Inc()

	reply, err := g.gateway.Send(ctx, sms)

	code := strconv.Itoa(reply.Code)
	if err != nil {
		code = "error"
	}
	sendMobileCounter.WithLabelValues(g.name, code).Add(float64(len(sms.Mobiles)))
	sendDurationSummary.WithLabelValues(g.name, code).Observe(time.Since(startTime).Seconds())
	return reply, err
}
