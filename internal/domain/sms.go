package domain

import (
	"strings"
	"time"
)

const (
	CodeSuccess            = 200
	CodeUnauthorized       = 401
	CodeInternalError      = 500
	CodeBadGateway         = 502 // 供应商拒绝发送
	CodeServiceUnavailable = 503 // 供应商熔断
)

// SmsKind 短信类型
type SmsKind int8

const (
	SmsKindCode   SmsKind = 1 // 验证码短信
	SmsKindNotice SmsKind = 2 // 通知类短信
)

func (k SmsKind) String() string {
	switch k {
	case SmsKindCode:
		return "code"
	case SmsKindNotice:
		return "notice"
	default:
		return "unknown"
	}
}

// KindOf 带验证码的是验证码短信，否则是通知短信
func KindOf(code string) SmsKind {
	if code == "" {
		return SmsKindNotice
	}
	return SmsKindCode
}

// SendRequest 发送请求，只在一次发送流程中存在
type SendRequest struct {
	AccID     string
	TimeStamp string
	Signature string
	Mobiles   []string
	Contents  string
	Code      string
	SmsSuffix string
	RequestID string
	ClientIP  string
}

func (r SendRequest) Kind() SmsKind {
	return KindOf(r.Code)
}

// SendResponse 发送结果
type SendResponse struct {
	Code    int
	Message string
}

// SMS 交给供应商下发的短信
type SMS struct {
	Mobiles []string
	Content string
	Suffix  string
}

// SignName 去掉后缀两边的括号，得到签名名称
func (s SMS) SignName() string {
	return strings.TrimSuffix(strings.TrimPrefix(s.Suffix, "【"), "】")
}

// Body 不带后缀的正文，部分供应商会自己拼接签名
func (s SMS) Body() string {
	if s.Suffix == "" {
		return s.Content
	}
	return strings.TrimSpace(strings.ReplaceAll(s.Content, s.Suffix, ""))
}

// ProviderReply 供应商的响应
type ProviderReply struct {
	Code    int
	Message string
}

func (r ProviderReply) Succeeded() bool {
	return r.Code == CodeSuccess
}

// UsageRecord 使用记录，一个手机号一条
type UsageRecord struct {
	ID           int64
	AccountID    int64
	Mobile       string
	Content      string
	Code         string
	Kind         SmsKind
	Units        int64 // 整批短信的计费条数
	SendOn       time.Time
	RequestID    string
	ClientIP     string
	ProviderCode string
	Ctime        int64
}
