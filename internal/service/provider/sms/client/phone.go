package client

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion 没有国家码的手机号按中国大陆处理
const DefaultRegion = "CN"

// FormatE164 把手机号转成 +8613800000000 这种格式
func FormatE164(phone, region string) (string, error) {
	if region == "" {
		region = DefaultRegion
	}
	num, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return "", fmt.Errorf("%w: 手机号 %s 格式错误: %w", ErrInvalidParameter, phone, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: 手机号 %s 无效", ErrInvalidParameter, phone)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
