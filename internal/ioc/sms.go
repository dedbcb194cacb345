package ioc

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/service/provider"
	"gitee.com/flycash/opensms-platform/internal/service/provider/breaker"
	"gitee.com/flycash/opensms-platform/internal/service/provider/metrics"
	"gitee.com/flycash/opensms-platform/internal/service/provider/sms"
	"gitee.com/flycash/opensms-platform/internal/service/provider/sms/client"
	"gitee.com/flycash/opensms-platform/internal/service/provider/throttle"
	"gitee.com/flycash/opensms-platform/internal/service/provider/tracing"
	"github.com/go-kratos/aegis/circuitbreaker/sre"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
)

func breakerOptions(c domain.ProviderBreaker) []sre.Option {
	var opts []sre.Option
	if c.Success > 0 {
		opts = append(opts, sre.WithSuccess(c.Success))
	}
	if c.Request > 0 {
		opts = append(opts, sre.WithRequest(c.Request))
	}
	if c.Window > 0 {
		opts = append(opts, sre.WithWindow(c.Window))
	}
	if c.Bucket > 0 {
		opts = append(opts, sre.WithBucket(c.Bucket))
	}
	return opts
}

func InitProviderRegistry() *provider.Registry {
	var cfgs []domain.Provider
	if err := econf.UnmarshalKey("sms.providers", &cfgs); err != nil {
		panic(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	gateways, err := buildGateways(ctx, cfgs, newSMSClient)
	if err != nil {
		panic(err)
	}
	registry := provider.NewRegistry(gateways)
	elog.Info("短信供应商初始化完成", elog.Any("providers", registry.Codes()))
	if def := econf.GetString("sms.account.defaultProvider"); def != "" {
		if _, ok := registry.Get(def); !ok {
			elog.Warn("默认供应商没有配置", elog.String("defaultProvider", def), elog.Any("providers", registry.Codes()))
		}
	}
	return registry
}

type clientFactory func(ctx context.Context, cfg domain.Provider) (client.Client, error)

// buildGateways 一次性返回所有配置错误
func buildGateways(ctx context.Context, cfgs []domain.Provider, newClient clientFactory) (map[string]provider.Gateway, error) {
	var errs *multierror.Error
	gateways := make(map[string]provider.Gateway, len(cfgs))
	for _, cfg := range cfgs {
		if cfg.Code == "" {
			errs = multierror.Append(errs, fmt.Errorf("供应商 %q 缺少 code", cfg.Type))
			continue
		}
		if _, ok := gateways[cfg.Code]; ok {
			errs = multierror.Append(errs, fmt.Errorf("供应商 code 重复: %s", cfg.Code))
			continue
		}
		c, err := newClient(ctx, cfg)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("初始化供应商 %s 失败: %w", cfg.Code, err))
			continue
		}
		gateways[cfg.Code] = decorateGateway(cfg, sms.NewSMSGateway(cfg.Code, c, cfg.TemplateID, cfg.TemplateParam))
	}
	return gateways, errs.ErrorOrNil()
}

// decorateGateway 由外到内依次是 tracing、metrics、熔断、限流
func decorateGateway(cfg domain.Provider, g provider.Gateway) provider.Gateway {
	if cfg.QPSLimit > 0 {
		g = throttle.NewGateway(g, cfg.QPSLimit)
	}
	g = breaker.NewGateway(cfg.Code, g, breakerOptions(cfg.Breaker)...)
	g = metrics.NewGateway(cfg.Code, g)
	return tracing.NewGateway(cfg.Code, g)
}

func newSMSClient(ctx context.Context, cfg domain.Provider) (client.Client, error) {
	switch cfg.Type {
	case domain.ProviderTypeAliyun:
		return client.NewAliyunSMS(cfg.RegionID, cfg.APIKey, cfg.APISecret)
	case domain.ProviderTypeTencentCloud:
		return client.NewTencentCloudSMS(cfg.RegionID, cfg.APIKey, cfg.APISecret, cfg.APPID)
	case domain.ProviderTypeSNS:
		region := cfg.DefaultRegion
		if region == "" {
			region = client.DefaultRegion
		}
		return client.NewSNSSMS(ctx, cfg.RegionID, region)
	default:
		return nil, fmt.Errorf("未知的供应商类型: %s", cfg.Type)
	}
}
