// File: internal/handler/auth/login.go
package auth

import (
	"context"
	"errors"
	"net/http"

	"gamelog/internal/api"
	"gamelog/internal/apperr"

	"github.com/labstack/echo/v4"
)

// Authenticator 由 *service.Accounts 實作
type Authenticator interface {
	Register(ctx context.Context, username, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// RegisterHandler 註冊一般使用者並回傳 JWT
// @Summary     註冊使用者
// @Description 建立 role 為 user 的帳號 (Email 會自動轉小寫)，回傳存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.AuthResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(svc Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		token, err := svc.Register(c.Request().Context(), req.Username, req.Email, req.Password)
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusCreated, api.AuthResponse{Message: "User registered successfully", Token: token})
	}
}

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.AuthResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(svc Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		token, err := svc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			// 查無使用者同樣回 401
			if errors.Is(err, apperr.ErrNotFound) {
				return api.WriteErrorStatus(c, http.StatusUnauthorized, err)
			}
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.AuthResponse{Message: "Login successful", Token: token})
	}
}
