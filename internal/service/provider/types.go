package provider

import (
	"context"
	"sort"

	"gitee.com/flycash/opensms-platform/internal/domain"
)

// Gateway 短信供应商
//
//go:generate mockgen -source=./types.go -destination=./mocks/gateway.mock.go -package=providermocks Gateway
type Gateway interface {
	// Send 供应商明确拒绝时返回非 200 的 reply，网络等问题返回 error
	Send(ctx context.Context, sms domain.SMS) (domain.ProviderReply, error)
}

// Registry 供应商编码到实现的映射，初始化后只读
type Registry struct {
	gateways map[string]Gateway
}

func NewRegistry(gateways map[string]Gateway) *Registry {
	return &Registry{gateways: gateways}
}

// Get 没有注册的编码返回 false
func (r *Registry) Get(code string) (Gateway, bool) {
	g, ok := r.gateways[code]
	return g, ok
}

func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.gateways))
	for code := range r.gateways {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
