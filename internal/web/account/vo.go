package account

import (
	"gitee.com/flycash/opensms-platform/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

// Account 查询结果不带密钥，只有新建时才返回 AccSecret
type Account struct {
	ID           int64  `json:"Id"`
	AccID        string `json:"AccId"`
	AccName      string `json:"AccName"`
	AccKey       string `json:"AccKey"`
	AccSecret    string `json:"AccSecret,omitempty"`
	SmsSuffix    string `json:"SmsSuffix"`
	Balance      int64  `json:"Balance"`
	Status       int8   `json:"Status"`
	ProviderCode string `json:"ProviderCode"`
	Remarks      string `json:"Remarks"`
	Ctime        int64  `json:"Ctime"`
	Utime        int64  `json:"Utime"`
}

func newAccount(acc domain.Account, withSecret bool) Account {
	res := Account{
		ID:           acc.ID,
		AccID:        acc.AccID,
		AccName:      acc.AccName,
		AccKey:       acc.AccKey,
		SmsSuffix:    acc.SmsSuffix,
		Balance:      acc.Balance,
		Status:       int8(acc.Status),
		ProviderCode: acc.ProviderCode,
		Remarks:      acc.Remarks,
		Ctime:        acc.Ctime,
		Utime:        acc.Utime,
	}
	if withSecret {
		res.AccSecret = acc.AccSecret
	}
	return res
}

func newAccounts(accs []domain.Account) []Account {
	return slice.Map(accs, func(_ int, src domain.Account) Account {
		return newAccount(src, false)
	})
}

type ErrorResp struct {
	Message string `json:"Message"`
}
