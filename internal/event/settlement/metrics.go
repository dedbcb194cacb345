package settlement

import (
	"context"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	settledUnits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_settled_units_total",
			Help: "扣费成功的短信条数",
		},
		[]string{"provider", "kind"},
	)
	settledSends = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_settled_sends_total",
			Help: "扣费成功的发送次数",
		},
		[]string{"provider", "kind"},
	)
	registerOnce sync.Once
)

// NewMetricsHandler 按供应商和短信类型统计扣费结果
func NewMetricsHandler() Handler {
	registerOnce.Do(func() {
		prometheus.MustRegister(settledUnits, settledSends)
	})
	return func(_ context.Context, evt SettledEvent) error {
		kind := strconv.Itoa(int(evt.Kind))
		settledUnits.WithLabelValues(evt.ProviderCode, kind).Add(float64(evt.Units))
		settledSends.WithLabelValues(evt.ProviderCode, kind).Inc()
		return nil
	}
}
