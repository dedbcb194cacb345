package limiter

import (
	"errors"
	"testing"
	"time"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/errs"
	repomocks "gitee.com/flycash/opensms-platform/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSendLimiter_CheckLimit(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.Local)
	monthStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	dayStart := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	const mobile = "13800000000"

	policies := domain.NewRateLimitPolicies([]domain.RateLimitPolicy{
		{SmsType: domain.SmsKindCode, Enabled: true, MonthMaxCount: 30, DayMaxCount: 5},
		{SmsType: domain.SmsKindNotice, Enabled: false, MonthMaxCount: 1, DayMaxCount: 1},
	})

	testCases := []struct {
		name     string
		kind     domain.SmsKind
		policies domain.RateLimitPolicies
		mock     func(ctrl *gomock.Controller) (*repomocks.MockLimitRepository, *repomocks.MockUsageRecordRepository)
		wantErr  error
	}{
		{
			name:     "黑名单",
			kind:     domain.SmsKindCode,
			policies: policies,
			mock: func(ctrl *gomock.Controller) (*repomocks.MockLimitRepository, *repomocks.MockUsageRecordRepository) {
				limitRepo := repomocks.NewMockLimitRepository(ctrl)
				limitRepo.EXPECT().FindByMobile(gomock.Any(), mobile).
					Return(domain.LimitEntry{ID: 1, Mobile: mobile, Type: domain.LimitTypeBlacklist}, nil)
				return limitRepo, repomocks.NewMockUsageRecordRepository(ctrl)
			},
			wantErr: errs.ErrBlacklisted,
		},
		{
			name:     "白名单不统计次数",
			kind:     domain.SmsKindCode,
			policies: policies,
			mock: func(ctrl *gomock.Controller) (*repomocks.MockLimitRepository, *repomocks.MockUsageRecordRepository) {
				limitRepo := repomocks.NewMockLimitRepository(ctrl)
				limitRepo.EXPECT().FindByMobile(gomock.Any(), mobile).
					Return(domain.LimitEntry{ID: 1, Mobile: mobile, Type: domain.LimitTypeWhitelist}, nil)
				return limitRepo, repomocks.NewMockUsageRecordRepository(ctrl)
			},
		},
		{
			name:     "策略未启用",
			kind:     domain.SmsKindNotice,
			policies: policies,
			mock: func(ctrl *gomock.Controller) (*repomocks.MockLimitRepository, *repomocks.MockUsageRecordRepository) {
				limitRepo := repomocks.NewMockLimitRepository(ctrl)
				limitRepo.EXPECT().FindByMobile(gomock.Any(), mobile).Return(domain.LimitEntry{}, nil)
				return limitRepo, repomocks.NewMockUsageRecordRepository(ctrl)
			},
		},
		{
			name:     "没有配置策略",
			kind:     domain.SmsKindCode,
			policies: domain.RateLimitPolicies{},
			mock: func(ctrl *gomock.Controller) (*repomocks.MockLimitRepository, *repomocks.MockUsageRecordRepository) {
				limitRepo := repomocks.NewMockLimitRepository(ctrl)
				limitRepo.EXPECT().FindByMobile(gomock.Any(), mobile).Return(domain.LimitEntry{}, nil)
				return limitRepo, repomocks.NewMockUsageRecordRepository(ctrl)
			},
		},
		{
			name:     "达到月上限",
			kind:     domain.SmsKindCode,
			policies: policies,
			mock: func(ctrl *gomock.Controller) (*repomocks.MockLimitRepository, *repomocks.MockUsageRecordRepository) {
				limitRepo := repomocks.NewMockLimitRepository(ctrl)
				limitRepo.EXPECT().FindByMobile(gomock.Any(), mobile).Return(domain.LimitEntry{}, nil)
				recordRepo := repomocks.NewMockUsageRecordRepository(ctrl)
				recordRepo.EXPECT().CountSince(gomock.Any(), mobile, domain.SmsKindCode, monthStart, dayStart).
					Return(domain.SendCounts{Month: 30, Day: 0}, nil)
				return limitRepo, recordRepo
			},
			wantErr: errs.ErrMonthlyCapReached,
		},
		{
			name:     "达到日上限",
			kind:     domain.SmsKindCode,
			policies: policies,
			mock: func(ctrl *gomock.Controller) (*repomocks.MockLimitRepository, *repomocks.MockUsageRecordRepository) {
				limitRepo := repomocks.NewMockLimitRepository(ctrl)
				limitRepo.EXPECT().FindByMobile(gomock.Any(), mobile).Return(domain.LimitEntry{}, nil)
				recordRepo := repomocks.NewMockUsageRecordRepository(ctrl)
				recordRepo.EXPECT().CountSince(gomock.Any(), mobile, domain.SmsKindCode, monthStart, dayStart).
					Return(domain.SendCounts{Month: 29, Day: 5}, nil)
				return limitRepo, recordRepo
			},
			wantErr: errs.ErrDailyCapReached,
		},
		{
			name:     "未达上限",
			kind:     domain.SmsKindCode,
			policies: policies,
			mock: func(ctrl *gomock.Controller) (*repomocks.MockLimitRepository, *repomocks.MockUsageRecordRepository) {
				limitRepo := repomocks.NewMockLimitRepository(ctrl)
				limitRepo.EXPECT().FindByMobile(gomock.Any(), mobile).Return(domain.LimitEntry{}, nil)
				recordRepo := repomocks.NewMockUsageRecordRepository(ctrl)
				recordRepo.EXPECT().CountSince(gomock.Any(), mobile, domain.SmsKindCode, monthStart, dayStart).
					Return(domain.SendCounts{Month: 29, Day: 4}, nil)
				return limitRepo, recordRepo
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			limitRepo, recordRepo := tc.mock(ctrl)
			l := NewSendLimiter(limitRepo, recordRepo, tc.policies)
			l.now = func() time.Time { return now }

			err := l.CheckLimit(t.Context(), mobile, tc.kind)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			re, ok := errs.AsReject(err)
			assert.True(t, ok)
			assert.Equal(t, errs.KindPolicy, re.Kind)
		})
	}
}

func TestSendLimiter_RepositoryError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limitRepo := repomocks.NewMockLimitRepository(ctrl)
	limitRepo.EXPECT().FindByMobile(gomock.Any(), gomock.Any()).Return(domain.LimitEntry{}, errors.New("mock db error"))
	l := NewSendLimiter(limitRepo, repomocks.NewMockUsageRecordRepository(ctrl), domain.RateLimitPolicies{})

	err := l.CheckLimit(t.Context(), "13800000000", domain.SmsKindCode)
	assert.Error(t, err)
	_, ok := errs.AsReject(err)
	assert.False(t, ok)
}
