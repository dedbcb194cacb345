package repository

import (
	"context"
	"time"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/repository/dao"
)

//go:generate mockgen -source=./record.go -destination=./mocks/record.mock.go -package=repomocks UsageRecordRepository
type UsageRecordRepository interface {
	// CountSince 统计某个手机号某类短信自 monthStart 和 dayStart 以来的发送次数
	CountSince(ctx context.Context, mobile string, kind domain.SmsKind, monthStart, dayStart time.Time) (domain.SendCounts, error)
}

type usageRecordRepository struct {
	dao dao.RecordDAO
}

func NewUsageRecordRepository(d dao.RecordDAO) UsageRecordRepository {
	return &usageRecordRepository{dao: d}
}

func (r *usageRecordRepository) CountSince(ctx context.Context, mobile string, kind domain.SmsKind,
	monthStart, dayStart time.Time,
) (domain.SendCounts, error) {
	cnt, err := r.dao.CountSince(ctx, mobile, int8(kind), monthStart.UnixMilli(), dayStart.UnixMilli())
	if err != nil {
		return domain.SendCounts{}, err
	}
	return domain.SendCounts{Month: cnt.MonthCnt, Day: cnt.DayCnt}, nil
}
