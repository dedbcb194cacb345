package client

import (
	"context"
	"errors"
)

const (
	OK = "OK"
	// CodeSendFailed 前面已经有号码发出去了，这个号码的请求失败
	CodeSendFailed = "SendFailed"
	// CodeNotSent 前面的请求失败后，剩下的号码不再发送
	CodeNotSent = "NotSent"
	// CodeNoStatus 供应商没有返回这个号码的状态
	CodeNoStatus = "NoStatus"
)

var (
	ErrInvalidParameter = errors.New("参数错误")
	ErrSendFailed       = errors.New("发送短信失败")
)

// Client 供应商 SDK 的统一封装
type Client interface {
	Send(ctx context.Context, req SendReq) (SendResp, error)
}

type SendReq struct {
	PhoneNumbers []string
	SignName     string
	// Content 完整的短信内容，不支持模版的供应商直接发送它
	Content       string
	TemplateID    string
	TemplateParam map[string]string
}

type SendResp struct {
	RequestID string
	// PhoneNumbers 每个手机号的发送状态，Code 为 OK 表示成功
	PhoneNumbers map[string]SendRespStatus
}

type SendRespStatus struct {
	Code    string
	Message string
}

// FirstFailure 按 phones 的顺序找第一个失败的号码，没有状态的号码也算失败
func (r SendResp) FirstFailure(phones []string) (string, SendRespStatus, bool) {
	for _, phone := range phones {
		status, ok := r.PhoneNumbers[phone]
		if !ok {
			return phone, SendRespStatus{Code: CodeNoStatus}, true
		}
		if status.Code != OK {
			return phone, status, true
		}
	}
	return "", SendRespStatus{}, false
}

// markUnsent 把还没有状态的号码标记为未发送
func (r SendResp) markUnsent(phones []string, reason string) {
	for _, phone := range phones {
		if _, ok := r.PhoneNumbers[phone]; !ok {
			r.PhoneNumbers[phone] = SendRespStatus{Code: CodeNotSent, Message: reason}
		}
	}
}
