package domain

import "time"

// ProviderType 供应商的实现类型
type ProviderType string

const (
	ProviderTypeAliyun       ProviderType = "aliyun"
	ProviderTypeTencentCloud ProviderType = "tencentcloud"
	ProviderTypeSNS          ProviderType = "sns"
)

// Provider 供应商配置，账号上的 ProviderCode 对应这里的 Code
type Provider struct {
	Code string       `yaml:"code"` // 供应商编码
	Type ProviderType `yaml:"type"` // 实现类型

	RegionID  string `yaml:"regionId"`
	APIKey    string `yaml:"apiKey"`    // API密钥
	APISecret string `yaml:"apiSecret"` // API密钥
	APPID     string `yaml:"appId"`     // 应用ID，仅腾讯云使用

	// 模版类供应商使用的模版，模版里只有一个正文参数
	TemplateID    string `yaml:"templateId"`
	TemplateParam string `yaml:"templateParam"`
	// 手机号所属地区，SNS 需要 E.164 格式
	DefaultRegion string `yaml:"defaultRegion"`

	QPSLimit int             `yaml:"qpsLimit"` // 每秒请求数限制，0 表示不限制
	Breaker  ProviderBreaker `yaml:"breaker"`
}

// ProviderBreaker 熔断参数，零值使用默认值
type ProviderBreaker struct {
	Success float64       `yaml:"success"` // 成功率低于这个值开始熔断
	Request int64         `yaml:"request"` // 窗口内请求数少于这个值不熔断
	Window  time.Duration `yaml:"window"`
	Bucket  int           `yaml:"bucket"`
}
