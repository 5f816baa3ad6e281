package store

import (
	"context"
	"fmt"
	"reflect"

	"gamelog/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// assign 依序把 values 寫入 Scan 的目的指標；nil 代表零值
func assign(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan: got %d dest, want %d", len(dest), len(values))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(reflect.ValueOf(values[i]))
	}
	return nil
}

// fakeRow 實作 pgx.Row
type fakeRow struct {
	values []any
	err    error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.values)
}

// fakeRows 實作 pgx.Rows
type fakeRows struct {
	data    [][]any
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	values := r.data[r.idx]
	r.idx++
	return assign(dest, values)
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

// call 記錄最後一次查詢
type call struct {
	sql  string
	args []any
}

func rowDB(c *call, row pgx.Row) *database.FakeDB {
	return &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			c.sql, c.args = sql, args
			return row
		},
	}
}

func rowsDB(c *call, rows pgx.Rows, err error) *database.FakeDB {
	return &database.FakeDB{
		QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			c.sql, c.args = sql, args
			return rows, err
		},
	}
}

func execDB(c *call, tag string, err error) *database.FakeDB {
	return &database.FakeDB{
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			c.sql, c.args = sql, args
			return pgconn.NewCommandTag(tag), err
		},
	}
}

func restoreNewID() func() {
	orig := newID
	seq := 0
	newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return func() { newID = orig }
}
