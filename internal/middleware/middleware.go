// File: internal/middleware/middleware.go
package middleware

import (
	"net/http"
	"strings"

	"gamelog/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// TokenParser 解析 bearer token，*service.Tokens 直接實作
type TokenParser interface {
	Parse(token string) (*service.Claims, error)
}

func extractClaims(c echo.Context, tokens TokenParser) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	claims, err := tokens.Parse(tokenString)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// RequireAuth 驗證 bearer token，並把 claims 放進 context
func RequireAuth(tokens TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, tokens)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireRole 必須掛在 RequireAuth 之後
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}
			if claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, role+" privileges required")
			}
			return next(c)
		}
	}
}

// ClaimsFrom 取出 RequireAuth 放入的 claims
func ClaimsFrom(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.Claims)
	return claims, ok && claims != nil
}
