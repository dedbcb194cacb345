package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

// Record 短信使用记录表，一个手机号一条
type Record struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false;comment:'雪花算法ID'"`
	AccountID    int64  `gorm:"type:BIGINT;NOT NULL;index:idx_account_id;comment:'账号ID'"`
	Mobile       string `gorm:"type:VARCHAR(20);NOT NULL;index:idx_mobile_kind_ctime,priority:1;comment:'手机号'"`
	Content      string `gorm:"type:VARCHAR(1024);NOT NULL;comment:'短信内容'"`
	Code         string `gorm:"type:VARCHAR(32);comment:'验证码'"`
	IsCode       int8   `gorm:"type:TINYINT;NOT NULL;index:idx_mobile_kind_ctime,priority:2;comment:'1-验证码 2-通知'"`
	Units        int64  `gorm:"type:BIGINT;NOT NULL;comment:'整批计费条数'"`
	SendOn       int64  `gorm:"comment:'发送时间，毫秒'"`
	RequestID    string `gorm:"type:VARCHAR(64);comment:'请求ID'"`
	ClientIP     string `gorm:"type:VARCHAR(64);comment:'调用方IP'"`
	ProviderCode string `gorm:"type:VARCHAR(32);comment:'供应商编码'"`
	Ctime        int64  `gorm:"index:idx_mobile_kind_ctime,priority:3"`
}

// TableName 重命名表
func (Record) TableName() string {
	return "osp_records"
}

// SendCount 统计结果
type SendCount struct {
	MonthCnt int64
	DayCnt   int64
}

type RecordDAO interface {
	// CountSince 统计手机号从 monthStart 起的发送次数，以及其中 dayStart 之后的次数
	CountSince(ctx context.Context, mobile string, isCode int8, monthStart, dayStart int64) (SendCount, error)
}

type recordDAO struct {
	db *egorm.Component
}

func NewRecordDAO(db *egorm.Component) RecordDAO {
	return &recordDAO{db: db}
}

func (d *recordDAO) CountSince(ctx context.Context, mobile string, isCode int8, monthStart, dayStart int64) (SendCount, error) {
	var res SendCount
	err := d.db.WithContext(ctx).Model(&Record{}).
		Select("COUNT(*) AS month_cnt, COALESCE(SUM(CASE WHEN ctime >= ? THEN 1 ELSE 0 END), 0) AS day_cnt", dayStart).
		Where("mobile = ? AND is_code = ? AND ctime >= ?", mobile, isCode, monthStart).
		Scan(&res).Error
	return res, err
}
