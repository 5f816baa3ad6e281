// File: internal/handler/ping.go
package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"gamelog/internal/api"
	"gamelog/internal/cache"
	"gamelog/internal/database"

	"github.com/labstack/echo/v4"
)

const (
	pingKey = "gamelog:ping"
	pingTTL = 30 * time.Second
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫連線與 Redis 讀寫是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			c.Logger().Errorf("ping database: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := probeCache(ctx, cch); err != nil {
			c.Logger().Errorf("ping cache: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}

// probeCache 寫入探測值後讀回比對，最後刪除
func probeCache(ctx context.Context, cch cache.Cache) error {
	want := strconv.FormatInt(time.Now().UnixNano(), 10)
	if err := cch.Set(ctx, pingKey, want, pingTTL).Err(); err != nil {
		return fmt.Errorf("set: %w", err)
	}
	got, err := cch.Get(ctx, pingKey).Result()
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}
	if got != want {
		return fmt.Errorf("probe mismatch: got %q", got)
	}
	// 過期時間兜底，刪除失敗不影響結果
	_ = cch.Del(ctx, pingKey).Err()
	return nil
}
