package ioc

import (
	"time"

	"gitee.com/flycash/opensms-platform/internal/pkg/ratelimit"
	smssvc "gitee.com/flycash/opensms-platform/internal/service/sms"
	accountweb "gitee.com/flycash/opensms-platform/internal/web/account"
	"gitee.com/flycash/opensms-platform/internal/web/health"
	"gitee.com/flycash/opensms-platform/internal/web/middleware"
	smsweb "gitee.com/flycash/opensms-platform/internal/web/sms"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/redis/go-redis/v9"
)

// InitSmsHandler 发送接口按客户端 IP 限流，rate 为 0 时关闭
func InitSmsHandler(svc smssvc.Service, rdb redis.Cmdable) *smsweb.Handler {
	type Config struct {
		Interval time.Duration `yaml:"interval"`
		Rate     int           `yaml:"rate"`
		// KeyPrefix 多个实例共用 redis 时区分限流 key
		KeyPrefix string `yaml:"keyPrefix"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("sms.ingress", &cfg); err != nil {
		panic(err)
	}
	var limiter ratelimit.Limiter
	if cfg.Rate > 0 && cfg.Interval > 0 {
		var opts []ratelimit.Option
		if cfg.KeyPrefix != "" {
			opts = append(opts, ratelimit.WithKeyPrefix(cfg.KeyPrefix))
		}
		limiter = ratelimit.NewRedisSlidingWindowLimiter(rdb, cfg.Interval, cfg.Rate, opts...)
	}
	return smsweb.NewHandler(svc,
		middleware.NewRateLimitBuilder(limiter, cfg.Interval).Prefix("sms-send").Build())
}

func InitWebServer(smsHdl *smsweb.Handler, accountHdl *accountweb.Handler, healthHdl *health.Handler) *egin.Component {
	server := egin.Load("server.http").Build()
	smsHdl.PublicRoutes(server.Engine)
	accountHdl.PublicRoutes(server.Engine)
	healthHdl.PublicRoutes(server.Engine)
	return server
}
