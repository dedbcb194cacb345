package account

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/errs"
	idgen "gitee.com/flycash/opensms-platform/internal/pkg/id_generator"
	"gitee.com/flycash/opensms-platform/internal/repository"
	"github.com/gofrs/uuid"
	"github.com/gotomicro/ego/core/elog"
)

const defaultSearchLimit = 100

// Service 账号鉴权与管理
//
//go:generate mockgen -source=./service.go -destination=./mocks/account.mock.go -package=accountmocks Service
type Service interface {
	// Authenticate 校验签名，失败时返回 errs.ErrSignature
	Authenticate(ctx context.Context, accID, timestamp, signature string) error
	// CheckAccount 校验账号状态和余额是否足够 units 条
	CheckAccount(ctx context.Context, accID, suffix string, units int64) (domain.Account, error)
	AddAccount(ctx context.Context, name, suffix, remarks string) (domain.Account, error)
	SearchByName(ctx context.Context, name string) ([]domain.Account, error)
}

type Config struct {
	// MaxClockSkew 大于 0 时校验请求时间戳，单位秒的时间戳与当前时间相差不能超过这个值
	MaxClockSkew time.Duration `yaml:"maxClockSkew"`
	// DefaultProvider 新建账号使用的供应商编码
	DefaultProvider string `yaml:"defaultProvider"`
	SearchLimit     int    `yaml:"searchLimit"`
}

type service struct {
	repo   repository.AccountRepository
	idGen  idgen.Generator
	cfg    Config
	now    func() time.Time
	logger *elog.Component
}

func NewService(repo repository.AccountRepository, idGen idgen.Generator, cfg Config) Service {
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = defaultSearchLimit
	}
	return &service{
		repo:   repo,
		idGen:  idGen,
		cfg:    cfg,
		now:    time.Now,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Authenticate(ctx context.Context, accID, timestamp, signature string) error {
	if !s.withinClockSkew(timestamp) {
		return errs.ErrSignature
	}
	acc, err := s.repo.FindByAccID(ctx, accID)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return errs.ErrSignature
		}
		return fmt.Errorf("查询账号失败: %w", err)
	}
	if !Verify(signature, acc.AccSecret, acc.AccID, acc.AccKey, timestamp) {
		s.logger.Warn("签名校验失败", elog.String("accID", accID))
		return errs.ErrSignature
	}
	return nil
}

func (s *service) withinClockSkew(timestamp string) bool {
	if s.cfg.MaxClockSkew <= 0 {
		return true
	}
	sec, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}
	diff := s.now().Sub(time.Unix(sec, 0))
	if diff < 0 {
		diff = -diff
	}
	return diff <= s.cfg.MaxClockSkew
}

func (s *service) CheckAccount(ctx context.Context, accID, suffix string, units int64) (domain.Account, error) {
	acc, err := s.repo.FindByAccIDAndSuffix(ctx, accID, suffix)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return domain.Account{}, errs.ErrAccountMismatch
		}
		return domain.Account{}, fmt.Errorf("查询账号失败: %w", err)
	}
	if !acc.IsEnabled() {
		return domain.Account{}, errs.ErrAccountDisabled
	}
	if acc.Balance < units {
		return domain.Account{}, errs.ErrBalanceInsufficient
	}
	return acc, nil
}

func (s *service) AddAccount(ctx context.Context, name, suffix, remarks string) (domain.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Account{}, fmt.Errorf("%w: 账号名称不能为空", errs.ErrInvalidParameter)
	}
	suffix = strings.TrimSpace(suffix)
	if suffix == "" {
		suffix = name
	}
	suffix = strings.TrimSuffix(strings.TrimPrefix(suffix, "【"), "】")

	accID, err := s.idGen.NextID()
	if err != nil {
		return domain.Account{}, err
	}
	accKey, err := s.idGen.NextID()
	if err != nil {
		return domain.Account{}, err
	}
	secret, err := uuid.NewV4()
	if err != nil {
		return domain.Account{}, fmt.Errorf("生成密钥失败: %w", err)
	}

	acc, err := s.repo.Create(ctx, domain.Account{
		AccID:        strconv.FormatInt(accID, 10),
		AccName:      name,
		AccKey:       strconv.FormatInt(accKey, 10),
		AccSecret:    hex.EncodeToString(secret.Bytes()),
		SmsSuffix:    "【" + suffix + "】",
		Balance:      0,
		Status:       domain.AccountStatusEnabled,
		ProviderCode: s.cfg.DefaultProvider,
		Remarks:      remarks,
	})
	if err != nil {
		return domain.Account{}, err
	}
	s.logger.Info("新建短信账号", elog.String("accID", acc.AccID), elog.String("name", name))
	return acc, nil
}

func (s *service) SearchByName(ctx context.Context, name string) ([]domain.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.Account{}, nil
	}
	return s.repo.SearchByName(ctx, name, s.cfg.SearchLimit)
}
