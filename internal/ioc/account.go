package ioc

import (
	"gitee.com/flycash/opensms-platform/internal/service/account"
	"github.com/gotomicro/ego/core/econf"
)

func InitAccountConfig() account.Config {
	var cfg account.Config
	if err := econf.UnmarshalKey("sms.account", &cfg); err != nil {
		panic(err)
	}
	cfg.MaxClockSkew = econf.GetDuration("sms.auth.maxClockSkew")
	return cfg
}
