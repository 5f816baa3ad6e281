// File: cmd/seed-admin/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"gamelog/internal/config"
	"gamelog/internal/database"
	"gamelog/internal/service"
)

var (
	loadAdminSeed   = config.LoadAdminSeed
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	exitFunc        = os.Exit
)

// run 建立管理員帳號；已存在時不做事
func run(ctx context.Context) error {
	cfg, err := loadAdminSeed()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	// SeedAdmin 不簽發 token
	accounts := service.NewAccounts(db, nil)
	created, err := accounts.SeedAdmin(ctx, cfg.Username, cfg.Email, cfg.Password)
	if err != nil {
		return fmt.Errorf("建立管理員失敗: %w", err)
	}
	if created {
		log.Printf("admin user %s created", cfg.Email)
	} else {
		log.Printf("admin user %s already exists", cfg.Email)
	}
	return nil
}

func main() {
	if err := run(context.Background()); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
