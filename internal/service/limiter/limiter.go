package limiter

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/errs"
	"gitee.com/flycash/opensms-platform/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// Limiter 单个手机号的发送限制
//
//go:generate mockgen -source=./limiter.go -destination=./mocks/limiter.mock.go -package=limitermocks Limiter
type Limiter interface {
	// CheckLimit 允许发送时返回 nil，被拒绝时返回 *errs.RejectError
	CheckLimit(ctx context.Context, mobile string, kind domain.SmsKind) error
}

var _ Limiter = (*SendLimiter)(nil)

type SendLimiter struct {
	limitRepo  repository.LimitRepository
	recordRepo repository.UsageRecordRepository
	policies   domain.RateLimitPolicies
	now        func() time.Time
	logger     *elog.Component
}

func NewSendLimiter(
	limitRepo repository.LimitRepository,
	recordRepo repository.UsageRecordRepository,
	policies domain.RateLimitPolicies,
) *SendLimiter {
	return &SendLimiter{
		limitRepo:  limitRepo,
		recordRepo: recordRepo,
		policies:   policies,
		now:        time.Now,
		logger:     elog.DefaultLogger,
	}
}

func (l *SendLimiter) CheckLimit(ctx context.Context, mobile string, kind domain.SmsKind) error {
	entry, err := l.limitRepo.FindByMobile(ctx, mobile)
	if err != nil {
		return fmt.Errorf("查询限制名单失败: %w", err)
	}
	if entry.Listed() {
		if entry.IsBlacklisted() {
			return errs.ErrBlacklisted
		}
		// 白名单不受条数限制
		return nil
	}

	policy, ok := l.policies[kind]
	if !ok || !policy.Enabled {
		return nil
	}

	now := l.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	cnt, err := l.recordRepo.CountSince(ctx, mobile, kind, monthStart, dayStart)
	if err != nil {
		return fmt.Errorf("统计发送次数失败: %w", err)
	}
	if cnt.Month >= policy.MonthMaxCount {
		l.logger.Info("手机号达到月发送上限",
			elog.String("mobile", mobile),
			elog.String("kind", kind.String()),
			elog.Int64("count", cnt.Month))
		return errs.ErrMonthlyCapReached
	}
	if cnt.Day >= policy.DayMaxCount {
		l.logger.Info("手机号达到日发送上限",
			elog.String("mobile", mobile),
			elog.String("kind", kind.String()),
			elog.Int64("count", cnt.Day))
		return errs.ErrDailyCapReached
	}
	return nil
}
