package breaker

import (
	"errors"
	"testing"
	"time"

	"gitee.com/flycash/opensms-platform/internal/domain"
	providermocks "gitee.com/flycash/opensms-platform/internal/service/provider/mocks"
	"github.com/go-kratos/aegis/circuitbreaker/sre"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGateway_Send(t *testing.T) {
	t.Parallel()

	t.Run("正常转发", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := providermocks.NewMockGateway(ctrl)
		mockGateway.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(domain.ProviderReply{Code: domain.CodeSuccess}, nil)

		reply, err := NewGateway("aliyun", mockGateway).Send(t.Context(), domain.SMS{})
		require.NoError(t, err)
		assert.True(t, reply.Succeeded())
	})

	t.Run("持续失败后熔断", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := providermocks.NewMockGateway(ctrl)
		mockGateway.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(domain.ProviderReply{}, errors.New("timeout")).AnyTimes()

		g := NewGateway("aliyun", mockGateway, sre.WithRequest(5), sre.WithWindow(time.Minute))
		rejected := 0
		for i := 0; i < 200; i++ {
			reply, err := g.Send(t.Context(), domain.SMS{})
			if err == nil {
				assert.Equal(t, domain.CodeServiceUnavailable, reply.Code)
				assert.Equal(t, "provider unavailable", reply.Message)
				rejected++
			}
		}
		assert.Positive(t, rejected)
	})
}
