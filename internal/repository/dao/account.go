package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/opensms-platform/internal/errs"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const recordBatchSize = 200

// Account 短信账号表
type Account struct {
	ID           int64  `gorm:"primaryKey;autoIncrement;comment:'账号ID'"`
	AccID        string `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:uk_acc_id;comment:'对外账号标识'"`
	AccName      string `gorm:"type:VARCHAR(128);NOT NULL;index:idx_acc_name;comment:'账号名称'"`
	AccKey       string `gorm:"type:VARCHAR(64);NOT NULL;comment:'签名key'"`
	AccSecret    string `gorm:"type:VARCHAR(64);NOT NULL;comment:'签名密钥'"`
	SmsSuffix    string `gorm:"type:VARCHAR(64);NOT NULL;comment:'短信后缀'"`
	Balance      int64  `gorm:"type:BIGINT;NOT NULL;DEFAULT:0;comment:'剩余条数'"`
	Status       int8   `gorm:"type:TINYINT;NOT NULL;DEFAULT:1;comment:'1-启用 2-停用'"`
	ProviderCode string `gorm:"type:VARCHAR(32);NOT NULL;comment:'供应商编码'"`
	Remarks      string `gorm:"type:VARCHAR(256);comment:'备注'"`
	Ctime        int64
	Utime        int64
}

// TableName 重命名表
func (Account) TableName() string {
	return "osp_accounts"
}

type AccountDAO interface {
	Create(ctx context.Context, account Account) (Account, error)
	FindByAccID(ctx context.Context, accID string) (Account, error)
	FindByAccIDAndSuffix(ctx context.Context, accID, suffix string) (Account, error)
	SearchByName(ctx context.Context, name string, limit int) ([]Account, error)
	// Settle 在同一个事务里扣减余额并写入使用记录
	Settle(ctx context.Context, accountID, units int64, records []Record) error
}

type accountDAO struct {
	db *egorm.Component
}

func NewAccountDAO(db *egorm.Component) AccountDAO {
	return &accountDAO{db: db}
}

func (d *accountDAO) Create(ctx context.Context, account Account) (Account, error) {
	now := time.Now().UnixMilli()
	account.Ctime, account.Utime = now, now
	err := d.db.WithContext(ctx).Create(&account).Error
	if d.isUniqueConstraintError(err) {
		return Account{}, fmt.Errorf("%w: accID=%s", errs.ErrAccountDuplicate, account.AccID)
	}
	return account, err
}

func (d *accountDAO) FindByAccID(ctx context.Context, accID string) (Account, error) {
	var res Account
	err := d.db.WithContext(ctx).Where("acc_id = ?", accID).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, fmt.Errorf("%w: accID=%s", errs.ErrAccountNotFound, accID)
	}
	return res, err
}

func (d *accountDAO) FindByAccIDAndSuffix(ctx context.Context, accID, suffix string) (Account, error) {
	var res Account
	err := d.db.WithContext(ctx).
		Where("acc_id = ? AND sms_suffix = ?", accID, suffix).
		First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, fmt.Errorf("%w: accID=%s, suffix=%s", errs.ErrAccountNotFound, accID, suffix)
	}
	return res, err
}

func (d *accountDAO) SearchByName(ctx context.Context, name string, limit int) ([]Account, error) {
	var res []Account
	err := d.db.WithContext(ctx).
		Where("acc_name LIKE ?", "%"+name+"%").
		Order("id DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

// Settle 余额使用 CAS 扣减，余额不够时影响行数为 0，整个事务回滚
func (d *accountDAO) Settle(ctx context.Context, accountID, units int64, records []Record) error {
	now := time.Now().UnixMilli()
	for i := range records {
		records[i].Ctime = now
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Account{}).
			Where("id = ? AND balance >= ?", accountID, units).
			Updates(map[string]any{
				"balance": gorm.Expr("`balance` - ?", units),
				"utime":   now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: id=%d, units=%d", errs.ErrInsufficientBalance, accountID, units)
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(records, recordBatchSize).Error
	})
}

// isUniqueConstraintError 检查是否是唯一索引冲突错误
func (d *accountDAO) isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	me := new(mysql.MySQLError)
	if ok := errors.As(err, &me); ok {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}
