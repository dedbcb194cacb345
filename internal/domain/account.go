package domain

// AccountStatus 账号状态
type AccountStatus int8

const (
	AccountStatusEnabled  AccountStatus = 1 // 启用
	AccountStatusDisabled AccountStatus = 2 // 停用
)

// Account 短信账号领域模型
type Account struct {
	ID           int64         // 主键
	AccID        string        // 对外暴露的账号标识
	AccName      string        // 账号名称
	AccKey       string        // 参与签名的 key
	AccSecret    string        // 签名密钥
	SmsSuffix    string        // 短信后缀，例如 【某某科技】
	Balance      int64         // 剩余条数
	Status       AccountStatus // 账号状态
	ProviderCode string        // 供应商编码
	Remarks      string
	Ctime        int64
	Utime        int64
}

// IsEnabled 只有明确停用的账号才算不可用
func (a Account) IsEnabled() bool {
	return a.Status != AccountStatusDisabled
}
