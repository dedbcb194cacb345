package metrics

import (
	"errors"
	"testing"

	"gitee.com/flycash/opensms-platform/internal/domain"
	providermocks "gitee.com/flycash/opensms-platform/internal/service/provider/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGateway_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := providermocks.NewMockGateway(ctrl)
	gomock.InOrder(
		mockGateway.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(domain.ProviderReply{Code: domain.CodeSuccess}, nil),
		mockGateway.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(domain.ProviderReply{}, errors.New("timeout")),
	)

	// 重复创建不会重复注册
	_ = NewGateway("metrics-test", mockGateway)
	g := NewGateway("metrics-test", mockGateway)

	sms := domain.SMS{Mobiles: []string{"13800000001", "13800000002"}}
	_, err := g.Send(t.Context(), sms)
	assert.NoError(t, err)
	_, err = g.Send(t.Context(), sms)
	assert.Error(t, err)

	assert.InDelta(t, 2, testutil.ToFloat64(sendCounter.WithLabelValues("metrics-test")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(sendMobileCounter.WithLabelValues("metrics-test", "200")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(sendMobileCounter.WithLabelValues("metrics-test", "error")), 0)
}
