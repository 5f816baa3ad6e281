// File: cmd/migrate/main.go
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gamelog/internal/config"
	"gamelog/internal/database"
)

var (
	loadDatabase = config.LoadDatabase
	migrateUp    = database.RunMigrations
	migrateDown  = database.RollbackAll
	exitFunc     = os.Exit
)

const usage = "usage: migrate up|down|reset"

// run 依子指令執行 migration；reset 會先全部回滾再重新套用
func run(args []string) error {
	if len(args) != 1 {
		return errors.New(usage)
	}
	cfg, err := loadDatabase()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	switch args[0] {
	case "up":
		return migrateUp(cfg.DatabaseURL)
	case "down":
		return migrateDown(cfg.DatabaseURL)
	case "reset":
		if err := migrateDown(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("RollbackAll 失敗: %w", err)
		}
		return migrateUp(cfg.DatabaseURL)
	default:
		return fmt.Errorf("unknown command %q, %s", args[0], usage)
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
