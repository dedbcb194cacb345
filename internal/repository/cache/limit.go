package cache

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"github.com/pkg/errors"
)

const (
	LimitPrefix        = "limit"
	DefaultExpiredTime = 10 * time.Minute
)

var ErrKeyNotFound = errors.New("key not found")

// LimitCache 缓存限制名单的查询结果，不在名单中的手机号也会缓存零值
// 名单变更不主动失效，靠过期时间兜底
type LimitCache interface {
	Get(ctx context.Context, mobile string) (domain.LimitEntry, error)
	Set(ctx context.Context, mobile string, entry domain.LimitEntry) error
}

func LimitKey(mobile string) string {
	return fmt.Sprintf("%s:%s", LimitPrefix, mobile)
}
