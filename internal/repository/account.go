package repository

import (
	"context"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./account.go -destination=./mocks/account.mock.go -package=repomocks AccountRepository
type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	FindByAccID(ctx context.Context, accID string) (domain.Account, error)
	FindByAccIDAndSuffix(ctx context.Context, accID, suffix string) (domain.Account, error)
	SearchByName(ctx context.Context, name string, limit int) ([]domain.Account, error)
	// Settle 扣减余额并写入使用记录，要么全部成功，要么全部失败
	Settle(ctx context.Context, accountID, units int64, records []domain.UsageRecord) error
}

type accountRepository struct {
	dao dao.AccountDAO
}

func NewAccountRepository(d dao.AccountDAO) AccountRepository {
	return &accountRepository{dao: d}
}

func (r *accountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	created, err := r.dao.Create(ctx, r.toEntity(account))
	if err != nil {
		return domain.Account{}, err
	}
	return r.toDomain(created), nil
}

func (r *accountRepository) FindByAccID(ctx context.Context, accID string) (domain.Account, error) {
	a, err := r.dao.FindByAccID(ctx, accID)
	if err != nil {
		return domain.Account{}, err
	}
	return r.toDomain(a), nil
}

func (r *accountRepository) FindByAccIDAndSuffix(ctx context.Context, accID, suffix string) (domain.Account, error) {
	a, err := r.dao.FindByAccIDAndSuffix(ctx, accID, suffix)
	if err != nil {
		return domain.Account{}, err
	}
	return r.toDomain(a), nil
}

func (r *accountRepository) SearchByName(ctx context.Context, name string, limit int) ([]domain.Account, error) {
	as, err := r.dao.SearchByName(ctx, name, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(as, func(_ int, src dao.Account) domain.Account {
		return r.toDomain(src)
	}), nil
}

func (r *accountRepository) Settle(ctx context.Context, accountID, units int64, records []domain.UsageRecord) error {
	rs := slice.Map(records, func(_ int, src domain.UsageRecord) dao.Record {
		return dao.Record{
			ID:           src.ID,
			AccountID:    accountID,
			Mobile:       src.Mobile,
			Content:      src.Content,
			Code:         src.Code,
			IsCode:       int8(src.Kind),
			Units:        src.Units,
			SendOn:       src.SendOn.UnixMilli(),
			RequestID:    src.RequestID,
			ClientIP:     src.ClientIP,
			ProviderCode: src.ProviderCode,
		}
	})
	return r.dao.Settle(ctx, accountID, units, rs)
}

func (r *accountRepository) toEntity(a domain.Account) dao.Account {
	return dao.Account{
		ID:           a.ID,
		AccID:        a.AccID,
		AccName:      a.AccName,
		AccKey:       a.AccKey,
		AccSecret:    a.AccSecret,
		SmsSuffix:    a.SmsSuffix,
		Balance:      a.Balance,
		Status:       int8(a.Status),
		ProviderCode: a.ProviderCode,
		Remarks:      a.Remarks,
		Ctime:        a.Ctime,
		Utime:        a.Utime,
	}
}

func (r *accountRepository) toDomain(a dao.Account) domain.Account {
	return domain.Account{
		ID:           a.ID,
		AccID:        a.AccID,
		AccName:      a.AccName,
		AccKey:       a.AccKey,
		AccSecret:    a.AccSecret,
		SmsSuffix:    a.SmsSuffix,
		Balance:      a.Balance,
		Status:       domain.AccountStatus(a.Status),
		ProviderCode: a.ProviderCode,
		Remarks:      a.Remarks,
		Ctime:        a.Ctime,
		Utime:        a.Utime,
	}
}
