// File: internal/cache/cache.go
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 是健康探測用到的 Redis 指令
// *redis.Client 直接實作；ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

var _ Cache = (*redis.Client)(nil)

// FakeCache 供測試使用，未設定 Get/Set/Del 時 panic
type FakeCache struct {
	GetFn   func(ctx context.Context, key string) *redis.StringCmd
	SetFn   func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	DelFn   func(ctx context.Context, keys ...string) *redis.IntCmd
	CloseFn func() error
}

func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

func (f *FakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.DelFn != nil {
		return f.DelFn(ctx, keys...)
	}
	panic("unexpected Del")
}

// Close 未設定時為 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

// NewMemory 回傳以 map 模擬 Redis 的 FakeCache，不處理過期
func NewMemory() *FakeCache {
	data := map[string]string{}
	return &FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			v, ok := data[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(v, nil)
		},
		SetFn: func(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
			data[key] = fmt.Sprint(value)
			return redis.NewStatusResult("OK", nil)
		},
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			var n int64
			for _, k := range keys {
				if _, ok := data[k]; ok {
					delete(data, k)
					n++
				}
			}
			return redis.NewIntResult(n, nil)
		},
	}
}
