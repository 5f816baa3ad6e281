// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config 服務啟動所需的設定，全部來自環境變數
type Config struct {
	Addr          string        `env:"HTTP_ADDR" envDefault:":8800"`
	DatabaseURL   string        `env:"DATABASE_URL,required,notEmpty"`
	RedisAddr     string        `env:"REDIS_ADDR,required,notEmpty"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	JWTSecret     string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"12h"`
	WorkerCount   int           `env:"WORKER_COUNT" envDefault:"4"`
	CORSOrigins   []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	Debug         bool          `env:"DEBUG"`
}

// AdminSeed 是 seed-admin 指令額外需要的設定
type AdminSeed struct {
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	Username    string `env:"ADMIN_USERNAME" envDefault:"admin"`
	Email       string `env:"ADMIN_EMAIL,required,notEmpty"`
	Password    string `env:"ADMIN_PASSWORD,required,notEmpty"`
}

// Database 是 migrate 指令只需要的設定
type Database struct {
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
}

// dotenvLoad 可在測試中替換
var dotenvLoad = godotenv.Load

// loadDotenv 讀取工作目錄下的 .env；檔案不存在時忽略
func loadDotenv() error {
	if err := dotenvLoad(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load 讀取並驗證服務設定
func Load() (*Config, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %s", cfg.TokenTTL)
	}
	if cfg.WorkerCount <= 0 {
		return nil, fmt.Errorf("invalid WORKER_COUNT: %d", cfg.WorkerCount)
	}
	return &cfg, nil
}

// LoadAdminSeed 讀取 seed-admin 的設定
func LoadAdminSeed() (*AdminSeed, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}
	var cfg AdminSeed
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// LoadDatabase 讀取 migrate 指令的設定
func LoadDatabase() (*Database, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}
	var cfg Database
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
