// File: internal/database/db.go
package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier 是 store 函式唯一依賴的查詢方法
// *pgxpool.Pool、pgx.Tx 皆實作
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB 為連線池：service 持有，健康檢查與關閉時使用
type DB interface {
	Querier
	Ping(context.Context) error
	Close()
}

var (
	_ DB      = (*FakeDB)(nil)
	_ Querier = pgx.Tx(nil)
)

// FakeDB 供測試使用，未設定的方法被呼叫時 panic
type FakeDB struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	PingFn     func(ctx context.Context) error
	CloseFn    func()
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn != nil {
		return f.ExecFn(ctx, sql, args...)
	}
	panic("unexpected Exec")
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn != nil {
		return f.QueryFn(ctx, sql, args...)
	}
	panic("unexpected Query")
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn != nil {
		return f.QueryRowFn(ctx, sql, args...)
	}
	panic("unexpected QueryRow")
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
