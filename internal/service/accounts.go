// File: internal/service/accounts.go
package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"gamelog/internal/apperr"
	"gamelog/internal/database"
	"gamelog/internal/model"
)

// Accounts 處理註冊、登入與管理員建立
type Accounts struct {
	db     database.DB
	tokens *Tokens
}

func NewAccounts(db database.DB, tokens *Tokens) *Accounts {
	return &Accounts{db: db, tokens: tokens}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCredentials(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return apperr.Validation("username, email and password are required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apperr.Validation("invalid email format")
	}
	return nil
}

// Register 建立 role 為 user 的帳號並回傳 token；Email 已存在時回傳 ErrConflict
func (a *Accounts) Register(ctx context.Context, username, email, password string) (string, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	if err := validateCredentials(username, email, password); err != nil {
		return "", err
	}

	if _, err := getUserByEmail(ctx, a.db, email); err == nil {
		return "", apperr.New(apperr.ErrConflict, "User already exists")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return "", err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}
	// 併發註冊由 unique index 擋下，store 會回傳 ErrConflict
	u, err := createUser(ctx, a.db, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	})
	if err != nil {
		return "", err
	}
	return a.tokens.Issue(u.ID, u.Role)
}

// Login 驗證帳密；查無使用者回傳 ErrNotFound，密碼錯誤回傳 ErrUnauthorized
func (a *Accounts) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", apperr.Validation("email and password are required")
	}

	u, err := getUserByEmail(ctx, a.db, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", apperr.NotFound("User not found")
		}
		return "", err
	}
	if err := ComparePassword(u.PasswordHash, password); err != nil {
		return "", apperr.New(apperr.ErrUnauthorized, "Invalid credentials")
	}
	return a.tokens.Issue(u.ID, u.Role)
}

// SeedAdmin 建立管理員帳號，已存在時不做事。
// Email 屬於一般使用者時回傳 ErrConflict，不會自動升級權限。
func (a *Accounts) SeedAdmin(ctx context.Context, username, email, password string) (bool, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	if err := validateCredentials(username, email, password); err != nil {
		return false, err
	}

	existing, err := getUserByEmail(ctx, a.db, email)
	switch {
	case err == nil && existing.Role == model.RoleAdmin:
		return false, nil
	case err == nil:
		return false, apperr.New(apperr.ErrConflict, "email belongs to a non-admin user")
	case !errors.Is(err, apperr.ErrNotFound):
		return false, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}
	if _, err := createUser(ctx, a.db, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}); err != nil {
		return false, err
	}
	return true, nil
}
