package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamelog/internal/config"
	"gamelog/internal/database"
	"gamelog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	loadAdminSeed = config.LoadAdminSeed
	newPgxPool = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	exitFunc = func(int) {}
}

type row struct {
	scan func(dest ...any) error
}

func (r row) Scan(dest ...any) error { return r.scan(dest...) }

func seedConfig() (*config.AdminSeed, error) {
	return &config.AdminSeed{DatabaseURL: "db", Username: "admin", Email: "Admin@Example.com", Password: "pw"}, nil
}

// seedDB 模擬 users 表：existingRole 為空代表查無此 Email
func seedDB(existingRole string, inserted *[]any, closed *bool) *database.FakeDB {
	return &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			if len(args) == 1 {
				if existingRole == "" {
					return row{scan: func(...any) error { return pgx.ErrNoRows }}
				}
				return row{scan: func(dest ...any) error {
					*dest[0].(*string) = "u-1"
					*dest[2].(*string) = args[0].(string)
					*dest[4].(*string) = existingRole
					return nil
				}}
			}
			*inserted = args
			return row{scan: func(dest ...any) error {
				*dest[0].(*time.Time) = time.Now()
				return nil
			}}
		},
		CloseFn: func() { *closed = true },
	}
}

func TestRunCreatesAdmin(t *testing.T) {
	t.Cleanup(restoreGlobals)
	var inserted []any
	closed, migrated := false, false
	loadAdminSeed = seedConfig
	runMigrationsFn = func(url string) error { migrated = url == "db"; return nil }
	newPgxPool = func(context.Context, string) (database.DB, error) {
		return seedDB("", &inserted, &closed), nil
	}

	require.NoError(t, run(context.Background()))
	require.True(t, migrated)
	require.True(t, closed)
	require.Len(t, inserted, 5)
	require.Equal(t, "admin", inserted[1])
	require.Equal(t, "admin@example.com", inserted[2])
	require.Equal(t, model.RoleAdmin, inserted[4])
}

func TestRunAdminExists(t *testing.T) {
	t.Cleanup(restoreGlobals)
	var inserted []any
	closed := false
	loadAdminSeed = seedConfig
	runMigrationsFn = func(string) error { return nil }
	newPgxPool = func(context.Context, string) (database.DB, error) {
		return seedDB(model.RoleAdmin, &inserted, &closed), nil
	}

	require.NoError(t, run(context.Background()))
	require.Nil(t, inserted)
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()
	var inserted []any
	closed := false

	loadAdminSeed = func() (*config.AdminSeed, error) { return nil, errors.New("cfg") }
	require.ErrorContains(t, run(ctx), "cfg")

	loadAdminSeed = seedConfig
	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.ErrorContains(t, run(ctx), "migrate")

	runMigrationsFn = func(string) error { return nil }
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("dial") }
	require.ErrorContains(t, run(ctx), "dial")

	newPgxPool = func(context.Context, string) (database.DB, error) {
		return seedDB(model.RoleUser, &inserted, &closed), nil
	}
	require.ErrorContains(t, run(ctx), "non-admin")
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restoreGlobals)
	code := 0
	exitFunc = func(c int) { code = c }
	loadAdminSeed = func() (*config.AdminSeed, error) { return nil, errors.New("cfg") }
	main()
	require.Equal(t, 1, code)
}
