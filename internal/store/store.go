// File: internal/store/store.go
package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// newID 產生新文件 ID，測試可覆寫
var newID = uuid.NewString

// Postgres SQLSTATE
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isUniqueViolation(err error) bool { return hasCode(err, uniqueViolation) }
