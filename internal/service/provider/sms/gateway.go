package sms

import (
	"context"
	"fmt"
	"strings"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/service/provider"
	"gitee.com/flycash/opensms-platform/internal/service/provider/sms/client"
)

// DefaultTemplateParam 模版里正文参数的默认名称
const DefaultTemplateParam = "content"

// smsGateway 把短信转成供应商 SDK 的请求
type smsGateway struct {
	code          string
	client        client.Client
	templateID    string
	templateParam string
}

// NewSMSGateway 模版类供应商把不带后缀的正文放进 templateParam 参数
func NewSMSGateway(code string, c client.Client, templateID, templateParam string) provider.Gateway {
	if templateParam == "" {
		templateParam = DefaultTemplateParam
	}
	return &smsGateway{
		code:          code,
		client:        c,
		templateID:    templateID,
		templateParam: templateParam,
	}
}

func (g *smsGateway) Send(ctx context.Context, sms domain.SMS) (domain.ProviderReply, error) {
	resp, err := g.client.Send(ctx, client.SendReq{
		PhoneNumbers:  sms.Mobiles,
		SignName:      sms.SignName(),
		Content:       sms.Content,
		TemplateID:    g.templateID,
		TemplateParam: map[string]string{g.templateParam: sms.Body()},
	})
	if err != nil {
		return domain.ProviderReply{}, fmt.Errorf("供应商 %s 发送失败: %w", g.code, err)
	}

	if _, status, failed := resp.FirstFailure(sms.Mobiles); failed {
		return domain.ProviderReply{
			Code:    domain.CodeBadGateway,
			Message: strings.TrimSpace(status.Code + " " + status.Message),
		}, nil
	}
	return domain.ProviderReply{Code: domain.CodeSuccess}, nil
}
