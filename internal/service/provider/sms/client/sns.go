package client

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

var _ Client = (*SNSSMS)(nil)

type snsAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSSMS AWS SNS 短信实现，SNS 没有模版和签名，直接发送完整内容，一次只能发一个手机号
type SNSSMS struct {
	client snsAPI
	region string
}

// NewSNSSMS defaultRegion 是没有国家码的手机号所属的地区
func NewSNSSMS(ctx context.Context, awsRegion, defaultRegion string) (*SNSSMS, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(awsRegion))
	if err != nil {
		return nil, fmt.Errorf("加载 AWS 配置失败: %w", err)
	}
	return &SNSSMS{client: sns.NewFromConfig(cfg), region: defaultRegion}, nil
}

// Send 一个号码发一次。第一个号码就失败时返回 error，
// 已经有号码发出去以后再失败，只在结果里标记失败和未发送的号码
func (s *SNSSMS) Send(ctx context.Context, req SendReq) (SendResp, error) {
	if len(req.PhoneNumbers) == 0 {
		return SendResp{}, fmt.Errorf("%w: %v", ErrInvalidParameter, "手机号码不能为空")
	}
	// 先校验全部号码，避免发了一半才发现后面的号码不合法
	e164s := make([]string, 0, len(req.PhoneNumbers))
	for _, phone := range req.PhoneNumbers {
		e164, err := FormatE164(phone, s.region)
		if err != nil {
			return SendResp{}, err
		}
		e164s = append(e164s, e164)
	}

	result := SendResp{
		PhoneNumbers: make(map[string]SendRespStatus, len(req.PhoneNumbers)),
	}
	for i, phone := range req.PhoneNumbers {
		out, err := s.client.Publish(ctx, &sns.PublishInput{
			PhoneNumber: &e164s[i],
			Message:     &req.Content,
		})
		if err != nil {
			if i == 0 {
				return SendResp{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
			}
			result.PhoneNumbers[phone] = SendRespStatus{Code: CodeSendFailed, Message: err.Error()}
			result.markUnsent(req.PhoneNumbers, "前面的号码发送失败")
			return result, nil
		}
		status := SendRespStatus{Code: OK}
		if out != nil && out.MessageId != nil {
			status.Message = *out.MessageId
			result.RequestID = *out.MessageId
		}
		result.PhoneNumbers[phone] = status
	}
	return result, nil
}
