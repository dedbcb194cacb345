package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

// Limit 限制名单表
type Limit struct {
	ID        int64  `gorm:"primaryKey;autoIncrement;comment:'ID'"`
	Mobile    string `gorm:"type:VARCHAR(20);NOT NULL;uniqueIndex:uk_mobile;comment:'手机号'"`
	LimitType int8   `gorm:"type:TINYINT;NOT NULL;comment:'1-白名单 2-黑名单'"`
	Remarks   string `gorm:"type:VARCHAR(256);comment:'备注'"`
	Ctime     int64
	Utime     int64
}

// TableName 重命名表
func (Limit) TableName() string {
	return "osp_limits"
}

type LimitDAO interface {
	// FindByMobile 不在名单中时返回零值
	FindByMobile(ctx context.Context, mobile string) (Limit, error)
}

type limitDAO struct {
	db *egorm.Component
}

func NewLimitDAO(db *egorm.Component) LimitDAO {
	return &limitDAO{db: db}
}

func (d *limitDAO) FindByMobile(ctx context.Context, mobile string) (Limit, error) {
	var res []Limit
	err := d.db.WithContext(ctx).Where("mobile = ?", mobile).Limit(1).Find(&res).Error
	if err != nil || len(res) == 0 {
		return Limit{}, err
	}
	return res[0], nil
}
