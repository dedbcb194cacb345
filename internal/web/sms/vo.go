package sms

import "gitee.com/flycash/opensms-platform/internal/domain"

// SendReq 对外接口保持大驼峰字段名
type SendReq struct {
	AccID     string   `json:"AccId"`
	TimeStamp string   `json:"TimeStamp"`
	Signature string   `json:"Signature"`
	Mobiles   []string `json:"Mobiles"`
	Contents  string   `json:"Contents"`
	Code      string   `json:"Code"`
	SmsSuffix string   `json:"SmsSuffix"`
	RequestID string   `json:"RequestId"`
}

func (r SendReq) toDomain(clientIP string) domain.SendRequest {
	return domain.SendRequest{
		AccID:     r.AccID,
		TimeStamp: r.TimeStamp,
		Signature: r.Signature,
		Mobiles:   r.Mobiles,
		Contents:  r.Contents,
		Code:      r.Code,
		SmsSuffix: r.SmsSuffix,
		RequestID: r.RequestID,
		ClientIP:  clientIP,
	}
}

type SendResp struct {
	Code    int    `json:"Code"`
	Message string `json:"Message"`
}

func newSendResp(resp domain.SendResponse) SendResp {
	return SendResp{Code: resp.Code, Message: resp.Message}
}
