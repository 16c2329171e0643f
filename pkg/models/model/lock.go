package model

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	lockRetryInterval = time.Second / 5
	lockExpireSeconds = 10
)

type RedisLock struct {
	*redis.RedisLock
}

func NewLock(rds *redis.Redis, LockName string) *RedisLock {
	lock := redis.NewRedisLock(rds, LockName)
	lock.SetExpire(lockExpireSeconds)
	return &RedisLock{
		RedisLock: lock,
	}
}

// Do runs f while holding the lock. The lock is released even when f fails.
func (l *RedisLock) Do(ctx context.Context, f func() error) (err error) {
	if err = l.Lock(ctx); err != nil {
		return err
	}

	defer func() {
		if unlockErr := l.UnLock(ctx); err == nil {
			err = unlockErr
		}
	}()

	return f()
}

func (l *RedisLock) Lock(ctx context.Context) error {
	for {
		acquire, err := l.AcquireCtx(ctx)
		if err != nil {
			return err
		}

		if acquire {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
}

func (l *RedisLock) UnLock(ctx context.Context) error {
	_, err := l.ReleaseCtx(ctx)
	return err
}
