package usage

import "unicode/utf8"

const (
	// SingleSegmentLimit 不超过这个长度按一条计费
	SingleSegmentLimit = 70
	// LongSegmentLength 长短信每条的长度
	LongSegmentLength = 67
)

// ComputeUnits 计算整批短信的计费条数
func ComputeUnits(recipients, contentLength int) int64 {
	if recipients <= 0 {
		return 0
	}
	perRecipient := int64(1)
	if contentLength > SingleSegmentLimit {
		perRecipient = int64((contentLength + LongSegmentLength - 1) / LongSegmentLength)
	}
	return perRecipient * int64(recipients)
}

// ContentLength 按字符计算长度，一个汉字算一个
func ContentLength(content string) int {
	return utf8.RuneCountInString(content)
}
