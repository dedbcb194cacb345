package throttle

import (
	"context"
	"testing"
	"time"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/errs"
	providermocks "gitee.com/flycash/opensms-platform/internal/service/provider/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGateway_Send(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := providermocks.NewMockGateway(ctrl)
	mockGateway.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(domain.ProviderReply{Code: domain.CodeSuccess}, nil).Times(2)

	g := NewGateway(mockGateway, 1)
	reply, err := g.Send(t.Context(), domain.SMS{})
	require.NoError(t, err)
	assert.True(t, reply.Succeeded())

	// 令牌已经用完，等不到下一个令牌
	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()
	_, err = g.Send(ctx, domain.SMS{})
	assert.ErrorIs(t, err, errs.ErrRateLimited)

	// 一秒后恢复
	reply, err = g.Send(t.Context(), domain.SMS{})
	require.NoError(t, err)
	assert.True(t, reply.Succeeded())
}
