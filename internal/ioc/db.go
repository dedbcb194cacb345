package ioc

import (
	"context"
	"database/sql"
	"time"

	"gitee.com/flycash/opensms-platform/internal/pkg/retry"
	"gitee.com/flycash/opensms-platform/internal/repository/dao"
	"github.com/ego-component/egorm"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitDB() *egorm.Component {
	WaitForDBSetup(econf.GetString("mysql.dsn"))
	db := egorm.Load("mysql").Build()
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}

// WaitForDBSetup 数据库通常和服务一起拉起，先等它能连上
func WaitForDBSetup(dsn string) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	defer sqlDB.Close()

	strategy, err := retry.NewRetry(retry.DefaultConfig())
	if err != nil {
		panic(err)
	}
	const timeout = 5 * time.Second
	err = retry.Do(context.Background(), strategy, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		err1 := sqlDB.PingContext(ctx)
		if err1 != nil {
			elog.Warn("等待数据库就绪", elog.FieldErr(err1))
		}
		return err1
	})
	if err != nil {
		panic("WaitForDBSetup 重试失败: " + err.Error())
	}
}
