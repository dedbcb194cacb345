package domain

// LimitType 限制名单类型
type LimitType int8

const (
	LimitTypeWhitelist LimitType = 1 // 白名单，不做条数限制
	LimitTypeBlacklist LimitType = 2 // 黑名单
)

// LimitEntry 限制名单中的一条记录
type LimitEntry struct {
	ID      int64
	Mobile  string
	Type    LimitType
	Remarks string
	Ctime   int64
	Utime   int64
}

// Listed 是否在名单中，查询不到时是零值
func (l LimitEntry) Listed() bool {
	return l.ID > 0
}

func (l LimitEntry) IsBlacklisted() bool {
	return l.Type == LimitTypeBlacklist
}

// RateLimitPolicy 单个手机号的发送上限，按短信类型区分
type RateLimitPolicy struct {
	SmsType       SmsKind `yaml:"smsType" json:"smsType"`
	Enabled       bool    `yaml:"enabled" json:"enabled"`
	MonthMaxCount int64   `yaml:"monthMaxCount" json:"monthMaxCount"`
	DayMaxCount   int64   `yaml:"dayMaxCount" json:"dayMaxCount"`
}

// RateLimitPolicies 按短信类型索引的限制策略
type RateLimitPolicies map[SmsKind]RateLimitPolicy

// NewRateLimitPolicies 同一类型配置了多次时，以最后一条为准
func NewRateLimitPolicies(list []RateLimitPolicy) RateLimitPolicies {
	res := make(RateLimitPolicies, len(list))
	for _, p := range list {
		res[p.SmsType] = p
	}
	return res
}

// SendCounts 某个手机号的历史发送计数
type SendCounts struct {
	Month int64
	Day   int64
}
