package sms

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/meoying/dlock-go"
	dlockRedis "github.com/meoying/dlock-go/redis"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockExpiration = 30 * time.Second
	defaultLockTimeout    = 200 * time.Millisecond
)

// ErrMobileLocked 锁确实被别的请求持有
var ErrMobileLocked = errors.New("手机号锁被其他请求持有")

// MobileLocker 严格模式下，同一个手机号同一时间只允许一个请求在限流检查和扣费之间
type MobileLocker interface {
	// TryLock 锁被别人持有时返回 ErrMobileLocked，其余 error 都是基础设施故障
	TryLock(ctx context.Context, mobile string) (unlock func(), err error)
}

type dlockMobileLocker struct {
	client     dlock.Client
	expiration time.Duration
	timeout    time.Duration
}

// NewDLockMobileLocker expiration 要大于一次发送的最长耗时
func NewDLockMobileLocker(rdb redis.Cmdable, expiration, timeout time.Duration) MobileLocker {
	if expiration <= 0 {
		expiration = defaultLockExpiration
	}
	if timeout <= 0 {
		timeout = defaultLockTimeout
	}
	return &dlockMobileLocker{
		client:     dlockRedis.NewClient(&attemptRecorder{Cmdable: rdb}),
		expiration: expiration,
		timeout:    timeout,
	}
}

func (l *dlockMobileLocker) TryLock(ctx context.Context, mobile string) (func(), error) {
	lock, err := l.client.NewLock(ctx, fmt.Sprintf("sms:mobile:%s", mobile), l.expiration)
	if err != nil {
		return nil, err
	}
	att := &lockAttempts{}
	lockCtx, cancel := context.WithTimeout(context.WithValue(ctx, lockAttemptsKey{}, att), l.timeout)
	err = lock.Lock(lockCtx)
	cancel()
	if err != nil {
		return nil, classifyLockErr(ctx, err, att)
	}
	return func() {
		// 发送流程的 ctx 可能已经结束，这里用新的 ctx
		unlockCtx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()
		_ = lock.Unlock(unlockCtx)
	}, nil
}

// classifyLockErr dlock 在等待超时后只返回 ctx 的错误，
// 要靠最后一次 Eval 的结果区分是锁被占用还是 Redis 出了问题
func classifyLockErr(ctx context.Context, err error, att *lockAttempts) error {
	if errors.Is(err, dlock.ErrLocked) {
		return ErrMobileLocked
	}
	if ctx.Err() != nil {
		return err
	}
	n, lastErr := att.snapshot()
	if errors.Is(err, context.DeadlineExceeded) && n > 0 && lastErr == nil {
		return ErrMobileLocked
	}
	if lastErr != nil {
		return fmt.Errorf("加锁访问 Redis 失败 %w", lastErr)
	}
	return err
}

type lockAttemptsKey struct{}

type lockAttempts struct {
	mu      sync.Mutex
	n       int
	lastErr error
}

func (a *lockAttempts) record(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.n++
	a.lastErr = err
}

func (a *lockAttempts) snapshot() (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.n, a.lastErr
}

// attemptRecorder 记录加锁脚本每一次执行的结果
type attemptRecorder struct {
	redis.Cmdable
}

func (r *attemptRecorder) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	cmd := r.Cmdable.Eval(ctx, script, keys, args...)
	if att, ok := ctx.Value(lockAttemptsKey{}).(*lockAttempts); ok {
		att.record(cmd.Err())
	}
	return cmd
}
