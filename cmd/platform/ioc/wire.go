//go:build wireinject

package ioc

import (
	"gitee.com/flycash/opensms-platform/internal/ioc"
	"gitee.com/flycash/opensms-platform/internal/repository"
	"gitee.com/flycash/opensms-platform/internal/repository/dao"
	"gitee.com/flycash/opensms-platform/internal/service/account"
	"gitee.com/flycash/opensms-platform/internal/service/limiter"
	"gitee.com/flycash/opensms-platform/internal/service/sms"
	accountweb "gitee.com/flycash/opensms-platform/internal/web/account"
	"gitee.com/flycash/opensms-platform/internal/web/health"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitRedisClient,
		ioc.InitGoCache,
		ioc.InitIDGenerator,
		ioc.InitMQ,
		ioc.InitZipkinTracer,
		wire.Bind(new(redis.Cmdable), new(*redis.Client)),
	)
	accountSvcSet = wire.NewSet(
		account.NewService,
		repository.NewAccountRepository,
		dao.NewAccountDAO,
		ioc.InitAccountConfig,
	)
	limiterSet = wire.NewSet(
		limiter.NewSendLimiter,
		wire.Bind(new(limiter.Limiter), new(*limiter.SendLimiter)),
		repository.NewUsageRecordRepository,
		dao.NewRecordDAO,
		ioc.InitLimitRepository,
		dao.NewLimitDAO,
		ioc.InitRateLimitPolicies,
	)
	smsSvcSet = wire.NewSet(
		sms.NewService,
		ioc.InitProviderRegistry,
		ioc.InitSettledEventProducer,
		ioc.InitMobileLocker,
	)
	webSet = wire.NewSet(
		ioc.InitSmsHandler,
		accountweb.NewHandler,
		health.NewHandler,
		ioc.InitWebServer,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		// 基础设施
		BaseSet,

		// 账号服务
		accountSvcSet,

		// 单号码限流
		limiterSet,

		// 发送服务
		smsSvcSet,

		// 扣费事件
		ioc.InitSettledEventConsumer,
		ioc.InitConsumers,

		// HTTP 服务器
		webSet,
		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
