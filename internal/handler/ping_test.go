package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamelog/internal/cache"
	"gamelog/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, db database.DB, cch cache.Cache) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, PingHandler(db, cch)(e.NewContext(req, rec)))
	return rec
}

func healthyDB() *database.FakeDB {
	return &database.FakeDB{PingFn: func(context.Context) error { return nil }}
}

func TestPingHandler(t *testing.T) {
	t.Run("db unhealthy", func(t *testing.T) {
		db := &database.FakeDB{
			PingFn: func(ctx context.Context) error { return errors.New("fail") },
		}
		rec := serve(t, db, &cache.FakeCache{})
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "database unhealthy")
	})

	t.Run("set fails", func(t *testing.T) {
		cch := &cache.FakeCache{SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("set"))
		}}
		rec := serve(t, healthyDB(), cch)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "cache unhealthy")
	})

	t.Run("get fails", func(t *testing.T) {
		cch := cache.NewMemory()
		cch.GetFn = func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		}
		rec := serve(t, healthyDB(), cch)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "redis")
	})

	t.Run("value mismatch", func(t *testing.T) {
		cch := cache.NewMemory()
		cch.GetFn = func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("stale", nil)
		}
		rec := serve(t, healthyDB(), cch)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "cache unhealthy")
	})

	t.Run("ok", func(t *testing.T) {
		cch := cache.NewMemory()
		setFn := cch.SetFn
		var gotKey string
		var gotTTL time.Duration
		cch.SetFn = func(ctx context.Context, key string, val any, exp time.Duration) *redis.StatusCmd {
			gotKey, gotTTL = key, exp
			return setFn(ctx, key, val, exp)
		}
		rec := serve(t, healthyDB(), cch)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
		require.Equal(t, pingKey, gotKey)
		require.Equal(t, pingTTL, gotTTL)
		// 探測鍵已刪除
		require.ErrorIs(t, cch.Get(context.Background(), pingKey).Err(), redis.Nil)
	})

	t.Run("del error ignored", func(t *testing.T) {
		cch := cache.NewMemory()
		cch.DelFn = func(context.Context, ...string) *redis.IntCmd {
			return redis.NewIntResult(0, errors.New("del"))
		}
		rec := serve(t, healthyDB(), cch)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
