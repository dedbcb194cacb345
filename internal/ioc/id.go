package ioc

import (
	idgen "gitee.com/flycash/opensms-platform/internal/pkg/id_generator"
	"github.com/gotomicro/ego/core/econf"
)

// InitIDGenerator 多实例部署时每个实例的 machineId 必须不同
func InitIDGenerator() idgen.Generator {
	gen, err := idgen.NewSonyflakeGenerator(uint16(econf.GetInt("idGenerator.machineId")))
	if err != nil {
		panic(err)
	}
	return gen
}
