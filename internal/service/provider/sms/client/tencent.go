package client

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/ecodeclub/ekit/slice"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	sms "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/sms/v20210111"
)

const (
	tencentOK = "Ok"
	// 腾讯云单次请求最多 200 个手机号
	tencentBatchSize = 200
)

var _ Client = (*TencentCloudSMS)(nil)

type tencentAPI interface {
	SendSmsWithContext(ctx context.Context, request *sms.SendSmsRequest) (*sms.SendSmsResponse, error)
}

// TencentCloudSMS 腾讯云短信实现
type TencentCloudSMS struct {
	client tencentAPI
	appID  string
	region string
}

// NewTencentCloudSMS 创建腾讯云短信实例
func NewTencentCloudSMS(regionID, secretID, secretKey, appID string) (*TencentCloudSMS, error) {
	credential := common.NewCredential(secretID, secretKey)
	cpf := profile.NewClientProfile()
	cpf.HttpProfile.Endpoint = "sms.tencentcloudapi.com"
	client, err := sms.NewClient(credential, regionID, cpf)
	if err != nil {
		return nil, err
	}
	return &TencentCloudSMS{client: client, appID: appID, region: DefaultRegion}, nil
}

func (t *TencentCloudSMS) Send(ctx context.Context, req SendReq) (SendResp, error) {
	if len(req.PhoneNumbers) == 0 {
		return SendResp{}, fmt.Errorf("%w: %v", ErrInvalidParameter, "手机号码不能为空")
	}

	// 先校验全部号码，返回的状态按 E.164 格式对应回调用方给的号码
	phones := make([]string, 0, len(req.PhoneNumbers))
	origin := make(map[string]string, len(req.PhoneNumbers))
	for _, phone := range req.PhoneNumbers {
		p, err := FormatE164(phone, t.region)
		if err != nil {
			return SendResp{}, err
		}
		phones = append(phones, p)
		origin[p] = phone
	}
	// 腾讯云的模版参数按位置传递，按参数名排序
	params := make([]string, 0, len(req.TemplateParam))
	for _, k := range slices.Sorted(maps.Keys(req.TemplateParam)) {
		params = append(params, req.TemplateParam[k])
	}

	result := SendResp{
		PhoneNumbers: make(map[string]SendRespStatus, len(phones)),
	}
	for start := 0; start < len(phones); start += tencentBatchSize {
		end := min(start+tencentBatchSize, len(phones))
		request := sms.NewSendSmsRequest()
		request.SmsSdkAppId = common.StringPtr(t.appID)
		request.SignName = common.StringPtr(req.SignName)
		request.TemplateId = common.StringPtr(req.TemplateID)
		request.TemplateParamSet = common.StringPtrs(params)
		request.PhoneNumberSet = common.StringPtrs(phones[start:end])

		response, err := t.client.SendSmsWithContext(ctx, request)
		if err == nil && (response == nil || response.Response == nil) {
			err = errors.New("响应异常")
		}
		if err != nil {
			if start == 0 {
				return SendResp{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
			}
			// 前面的批次已经发出去了，这一批和后面的都算失败
			for _, p := range phones[start:end] {
				result.PhoneNumbers[origin[p]] = SendRespStatus{Code: CodeSendFailed, Message: err.Error()}
			}
			result.markUnsent(req.PhoneNumbers, "前面的批次发送失败")
			return result, nil
		}
		if response.Response.RequestId != nil {
			result.RequestID = *response.Response.RequestId
		}
		statuses := slice.FilterMap(response.Response.SendStatusSet, func(_ int, src *sms.SendStatus) (*sms.SendStatus, bool) {
			return src, src != nil && src.PhoneNumber != nil
		})
		for _, status := range statuses {
			phone, ok := origin[*status.PhoneNumber]
			if !ok {
				continue
			}
			code := OK
			if status.Code == nil || *status.Code != tencentOK {
				code = strOrEmpty(status.Code)
			}
			result.PhoneNumbers[phone] = SendRespStatus{
				Code:    code,
				Message: strOrEmpty(status.Message),
			}
		}
	}
	return result, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
