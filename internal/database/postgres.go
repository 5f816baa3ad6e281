// File: internal/database/postgres.go
package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrateInstance 是 *migrate.Migrate 中用到的部分
type migrateInstance interface {
	Up() error
	Down() error
}

// 以下變數讓測試可替換外部依賴
var (
	pgxpoolNew             = pgxpool.New
	sqlOpenDB              = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn              = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
)

// NewPgxPool 建立連線池並回傳 DB 介面
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpoolNew(ctx, url)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// newMigrator 以 pgx stdlib driver 開啟 *sql.DB 並載入內嵌的 migration
func newMigrator(dbURL string) (migrateInstance, func() error, error) {
	sqlDB, err := sqlOpenDB("pgx", dbURL)
	if err != nil {
		return nil, nil, err
	}

	driver, err := postgresWithInstanceFn(sqlDB, &postgres.Config{})
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	sourceDriver, err := iofsNewFn(migrationsFS, "migrations")
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	m, err := migrateNewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}
	return m, sqlDB.Close, nil
}

// RunMigrations 嵌入並執行 SQL migration (up all)
func RunMigrations(dbURL string) error {
	m, closeFn, err := newMigrator(dbURL)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// RollbackAll 退回所有 migration (down to version 0)
func RollbackAll(dbURL string) error {
	m, closeFn, err := newMigrator(dbURL)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
