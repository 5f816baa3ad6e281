// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"time"

	"gamelog/internal/apperr"
	"gamelog/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// ErrEmptySecret 表示未設定簽章金鑰
var ErrEmptySecret = errors.New("jwt secret is empty")

// Claims 定義 JWT 負載內容
type Claims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin 回傳是否為管理員
func (c *Claims) IsAdmin() bool { return c.Role == model.RoleAdmin }

// Tokens 以固定金鑰簽發與驗證 session token，啟動時建立一次
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	return &Tokens{secret: []byte(secret), ttl: ttl}, nil
}

// Issue 產生 HS256 JWT，負載為 {id, role} 加上 sub/iat/exp
func (t *Tokens) Issue(userID, role string) (string, error) {
	now := timeNow()
	claims := Claims{
		ID:   userID,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse 驗證簽章、到期時間與負載，失敗一律回傳 ErrUnauthorized
func (t *Tokens) Parse(tokenString string) (*Claims, error) {
	token, err := parseWithClaims(tokenString, &Claims{}, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(timeNow),
	)
	if err != nil {
		return nil, apperr.Newf(apperr.ErrUnauthorized, "invalid token: %v", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperr.New(apperr.ErrUnauthorized, "invalid token")
	}
	if claims.ID == "" {
		return nil, apperr.New(apperr.ErrUnauthorized, "invalid token payload")
	}
	if claims.Role != model.RoleUser && claims.Role != model.RoleAdmin {
		return nil, apperr.New(apperr.ErrUnauthorized, "invalid token role")
	}
	return claims, nil
}
