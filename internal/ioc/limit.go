package ioc

import (
	"gitee.com/flycash/opensms-platform/internal/domain"
	"github.com/gotomicro/ego/core/econf"
)

// InitRateLimitPolicies 启动时读取一次，没有配置的类型不限制
func InitRateLimitPolicies() domain.RateLimitPolicies {
	var policies []domain.RateLimitPolicy
	if err := econf.UnmarshalKey("sms.limit.policies", &policies); err != nil {
		panic(err)
	}
	return domain.NewRateLimitPolicies(policies)
}
