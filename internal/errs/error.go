package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter    = errors.New("参数错误")
	ErrAccountNotFound     = errors.New("账号不存在")
	ErrAccountDuplicate    = errors.New("账号主键冲突")
	ErrInsufficientBalance = errors.New("账号余额不足")
	ErrSettlementFailed    = errors.New("扣费结算失败")
	ErrProviderUnavailable = errors.New("供应商不可用")
	ErrRateLimited         = errors.New("已达到速率限制")
)

// Kind 拒绝发送的原因分类
type Kind uint8

const (
	KindValidation Kind = iota + 1
	KindAuth
	KindPolicy
	KindAccount
)

// RejectError 发送请求被拒绝，但不是系统错误。Reason 会原样返回给调用方
type RejectError struct {
	Kind   Kind
	Reason string
}

func (e *RejectError) Error() string {
	return e.Reason
}

func newReject(kind Kind, reason string) *RejectError {
	return &RejectError{Kind: kind, Reason: reason}
}

// 发送流程中的拒绝原因，使用 errors.Is 判断
var (
	ErrParamMissing        = newReject(KindValidation, "parameter missing")
	ErrCodeNotInContent    = newReject(KindValidation, "content does not contain the verification code")
	ErrSuffixNotInContent  = newReject(KindValidation, "content is missing the sms suffix")
	ErrTooManyMobiles      = newReject(KindValidation, "mobiles cannot exceed 1000")
	ErrContentTooLong      = newReject(KindValidation, "content cannot exceed 1000 characters")
	ErrSignature           = newReject(KindAuth, "Signature Error")
	ErrBlacklisted         = newReject(KindPolicy, "number is blacklisted")
	ErrMonthlyCapReached   = newReject(KindPolicy, "monthly cap reached")
	ErrDailyCapReached     = newReject(KindPolicy, "daily cap reached")
	ErrMobileBusy          = newReject(KindPolicy, "number is busy, retry later")
	ErrAccountMismatch     = newReject(KindAccount, "signature error")
	ErrAccountDisabled     = newReject(KindAccount, "account disabled")
	ErrBalanceInsufficient = newReject(KindAccount, "insufficient balance")
)

// AsReject 取出错误链上的拒绝原因
func AsReject(err error) (*RejectError, bool) {
	var re *RejectError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
