package ioc

import (
	"gitee.com/flycash/opensms-platform/internal/service/sms"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/redis/go-redis/v9"
)

// InitMobileLocker 只有开启 sms.limit.strict 才会按手机号加分布式锁
func InitMobileLocker(rdb redis.Cmdable) sms.MobileLocker {
	if !econf.GetBool("sms.limit.strict") {
		return nil
	}
	elog.Info("单号码限流使用严格模式")
	return sms.NewDLockMobileLocker(rdb,
		econf.GetDuration("sms.limit.lockExpiration"),
		econf.GetDuration("sms.limit.lockTimeout"))
}
