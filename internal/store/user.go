// File: internal/store/user.go
package store

import (
	"context"
	"errors"
	"fmt"

	"gamelog/internal/apperr"
	"gamelog/internal/database"
	"gamelog/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, email, password_hash, role, created_at`

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
	)
}

// CreateUser 新增使用者；Email 重複時回傳 ErrConflict
func CreateUser(ctx context.Context, db database.Querier, u *model.User) (*model.User, error) {
	u.ID = newID()
	if u.Role == "" {
		u.Role = model.RoleUser
	}
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, username, email, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.Role,
	)
	if err := row.Scan(&u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.New(apperr.ErrConflict, "user already exists")
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.Querier, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// GetUsersByIDs 一次取回多位使用者，以 ID 為 key；不存在的 ID 不會出現在結果中
func GetUsersByIDs(ctx context.Context, db database.Querier, ids []string) (map[string]model.User, error) {
	out := make(map[string]model.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("GetUsersByIDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("GetUsersByIDs: %w", err)
		}
		out[u.ID] = u
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetUsersByIDs: %w", err)
	}
	return out, nil
}
