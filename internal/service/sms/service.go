package sms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/errs"
	"gitee.com/flycash/opensms-platform/internal/event/settlement"
	idgen "gitee.com/flycash/opensms-platform/internal/pkg/id_generator"
	"gitee.com/flycash/opensms-platform/internal/repository"
	"gitee.com/flycash/opensms-platform/internal/service/account"
	"gitee.com/flycash/opensms-platform/internal/service/limiter"
	"gitee.com/flycash/opensms-platform/internal/service/provider"
	"gitee.com/flycash/opensms-platform/internal/service/usage"
	"github.com/gotomicro/ego/core/elog"
)

const (
	mobileLength      = 11
	maxMobiles        = 1000
	maxContentLength  = 1000
	defaultSuccessMsg = "sent"
)

// Service 短信发送
//
//go:generate mockgen -source=./service.go -destination=./mocks/sms.mock.go -package=smsmocks Service
type Service interface {
	// Send 不返回 error，所有结果都体现在 SendResponse 里
	Send(ctx context.Context, req domain.SendRequest) domain.SendResponse
}

type sendService struct {
	accountSvc  account.Service
	limiter     limiter.Limiter
	registry    *provider.Registry
	accountRepo repository.AccountRepository
	idGen       idgen.Generator
	producer    settlement.SettledEventProducer
	// locker 为 nil 时是宽松模式，并发请求可能让同一个手机号略微超过上限
	locker MobileLocker
	now    func() time.Time
	logger *elog.Component
}

func NewService(
	accountSvc account.Service,
	limiter limiter.Limiter,
	registry *provider.Registry,
	accountRepo repository.AccountRepository,
	idGen idgen.Generator,
	producer settlement.SettledEventProducer,
	locker MobileLocker,
) Service {
	return &sendService{
		accountSvc:  accountSvc,
		limiter:     limiter,
		registry:    registry,
		accountRepo: accountRepo,
		idGen:       idGen,
		producer:    producer,
		locker:      locker,
		now:         time.Now,
		logger:      elog.DefaultLogger,
	}
}

func (s *sendService) Send(ctx context.Context, req domain.SendRequest) (resp domain.SendResponse) {
	defer func() {
		if r := recover(); r != nil {
			resp = s.internalError(req, fmt.Errorf("panic: %v", r))
		}
	}()

	res, err := s.send(ctx, req)
	if err == nil {
		return res
	}
	if re, ok := errs.AsReject(err); ok {
		res = domain.SendResponse{Message: re.Reason}
		if re.Kind == errs.KindAuth {
			res.Code = domain.CodeUnauthorized
		}
		return res
	}
	return s.internalError(req, err)
}

func (s *sendService) internalError(req domain.SendRequest, err error) domain.SendResponse {
	s.logger.Error("发送短信失败",
		elog.String("accID", req.AccID),
		elog.String("requestID", req.RequestID),
		elog.FieldErr(err))
	return domain.SendResponse{
		Code:    domain.CodeInternalError,
		Message: "internal server error: " + err.Error(),
	}
}

func (s *sendService) send(ctx context.Context, req domain.SendRequest) (domain.SendResponse, error) {
	mobiles := filterMobiles(req.Mobiles)
	if err := checkParams(req, mobiles); err != nil {
		return domain.SendResponse{}, err
	}

	if err := s.accountSvc.Authenticate(ctx, req.AccID, req.TimeStamp, req.Signature); err != nil {
		return domain.SendResponse{}, err
	}

	// 批量发送不做单个手机号的限制
	if len(mobiles) == 1 {
		if s.locker != nil {
			unlock, err := s.locker.TryLock(ctx, mobiles[0])
			if errors.Is(err, ErrMobileLocked) {
				s.logger.Warn("手机号正在被其他请求处理", elog.String("mobile", mobiles[0]))
				return domain.SendResponse{}, errs.ErrMobileBusy
			}
			if err != nil {
				return domain.SendResponse{}, fmt.Errorf("获取手机号锁失败 %w", err)
			}
			defer unlock()
		}
		if err := s.limiter.CheckLimit(ctx, mobiles[0], req.Kind()); err != nil {
			return domain.SendResponse{}, err
		}
	}

	units := usage.ComputeUnits(len(mobiles), usage.ContentLength(req.Contents))
	acc, err := s.accountSvc.CheckAccount(ctx, req.AccID, req.SmsSuffix, units)
	if err != nil {
		return domain.SendResponse{}, err
	}

	reply, err := s.dispatch(ctx, acc, domain.SMS{
		Mobiles: mobiles,
		Content: req.Contents,
		Suffix:  req.SmsSuffix,
	})
	if err != nil {
		return domain.SendResponse{}, err
	}
	if !reply.Succeeded() {
		return domain.SendResponse{Code: reply.Code, Message: reply.Message}, nil
	}

	if err = s.settle(ctx, acc, req, mobiles, units); err != nil {
		return domain.SendResponse{}, err
	}

	msg := reply.Message
	if msg == "" {
		msg = defaultSuccessMsg
	}
	return domain.SendResponse{Code: domain.CodeSuccess, Message: msg}, nil
}

// dispatch 没有注册的供应商编码视为发送成功
func (s *sendService) dispatch(ctx context.Context, acc domain.Account, sms domain.SMS) (domain.ProviderReply, error) {
	gateway, ok := s.registry.Get(acc.ProviderCode)
	if !ok {
		s.logger.Warn("供应商未注册，跳过发送",
			elog.String("accID", acc.AccID),
			elog.String("provider", acc.ProviderCode))
		return domain.ProviderReply{Code: domain.CodeSuccess}, nil
	}
	return gateway.Send(ctx, sms)
}

func (s *sendService) settle(ctx context.Context, acc domain.Account, req domain.SendRequest,
	mobiles []string, units int64,
) error {
	now := s.now()
	records := make([]domain.UsageRecord, 0, len(mobiles))
	for _, mobile := range mobiles {
		id, err := s.idGen.NextID()
		if err != nil {
			return fmt.Errorf("%w: %w", errs.ErrSettlementFailed, err)
		}
		records = append(records, domain.UsageRecord{
			ID:           id,
			AccountID:    acc.ID,
			Mobile:       mobile,
			Content:      req.Contents,
			Code:         req.Code,
			Kind:         req.Kind(),
			Units:        units,
			SendOn:       now,
			RequestID:    req.RequestID,
			ClientIP:     req.ClientIP,
			ProviderCode: acc.ProviderCode,
		})
	}

	if err := s.accountRepo.Settle(ctx, acc.ID, units, records); err != nil {
		return fmt.Errorf("%w: accID=%s, units=%d: %w", errs.ErrSettlementFailed, acc.AccID, units, err)
	}

	evt := settlement.SettledEvent{
		AccountID:    acc.ID,
		AccID:        acc.AccID,
		Mobiles:      mobiles,
		Units:        units,
		Kind:         int8(req.Kind()),
		ProviderCode: acc.ProviderCode,
		RequestID:    req.RequestID,
		SettledAt:    now.UnixMilli(),
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Warn("发送扣费事件失败",
			elog.String("accID", acc.AccID),
			elog.Any("event", evt),
			elog.FieldErr(err))
	}
	return nil
}

// filterMobiles 只保留 11 位的手机号
func filterMobiles(mobiles []string) []string {
	res := make([]string, 0, len(mobiles))
	for _, m := range mobiles {
		if utf8.RuneCountInString(m) == mobileLength {
			res = append(res, m)
		}
	}
	return res
}

func checkParams(req domain.SendRequest, mobiles []string) error {
	if isBlank(req.AccID) || isBlank(req.Contents) || isBlank(req.SmsSuffix) ||
		isBlank(req.Signature) || len(mobiles) == 0 {
		return errs.ErrParamMissing
	}
	if req.Code != "" && !strings.Contains(req.Contents, req.Code) {
		return errs.ErrCodeNotInContent
	}
	if !strings.Contains(req.Contents, req.SmsSuffix) {
		return errs.ErrSuffixNotInContent
	}
	if len(mobiles) > maxMobiles {
		return errs.ErrTooManyMobiles
	}
	if usage.ContentLength(req.Contents) > maxContentLength {
		return errs.ErrContentTooLong
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
