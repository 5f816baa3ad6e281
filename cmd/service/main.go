// File: cmd/service/main.go
// @title        GameLog API
// @version      1.0
// @description  這是 GameLog 的後端 API 文件：遊戲目錄與玩家遊玩經驗
// @host         localhost:8800
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description 以 "Bearer <token>" 格式帶入登入取得的 JWT
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"gamelog/internal/cache"
	"gamelog/internal/config"
	"gamelog/internal/database"
	"gamelog/internal/router"
	"gamelog/internal/service"
	"gamelog/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "gamelog/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func newEcho(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Debug = cfg.Debug
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	return e
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	tokens, err := service.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("JWT 設定錯誤: %w", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	redis, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	e := newEcho(cfg)
	router.Setup(e, db, redis, tokens, wp)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.Addr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
