// File: internal/handler/games/games.go
package games

import (
	"context"
	"net/http"

	"gamelog/internal/api"
	"gamelog/internal/model"
	"gamelog/internal/service"

	"github.com/labstack/echo/v4"
)

// Catalog 由 *service.Catalog 實作
type Catalog interface {
	Create(ctx context.Context, in service.NewGame) (*model.Game, error)
	List(ctx context.Context) ([]model.Game, error)
	Get(ctx context.Context, id string) (*model.Game, error)
	Update(ctx context.Context, id string, in service.GameChanges) (*model.Game, error)
	Delete(ctx context.Context, id string) error
}

// CreateGameHandler 新增遊戲 (管理員)
// @Summary     Create a game
// @Description 管理員新增遊戲，description 至少 10 個字
// @Tags        games
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateGameRequest true "遊戲資料"
// @Success     201  {object} api.GameResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /game [post]
func CreateGameHandler(svc Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateGameRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		g, err := svc.Create(c.Request().Context(), service.NewGame{
			Title:       req.Title,
			Description: req.Description,
			Genre:       req.Genre,
			Platform:    req.Platform,
			ReleaseDate: req.ReleaseDate,
			CoverImage:  req.CoverImage,
		})
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusCreated, api.GameResponse{Message: "Game created successfully", Data: g})
	}
}

// ListGamesHandler 列出所有遊戲
// @Summary     List games
// @Tags        games
// @Produce     json
// @Success     200 {object} api.GameListResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /game [get]
func ListGamesHandler(svc Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := svc.List(c.Request().Context())
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.GameListResponse{Data: list})
	}
}

// GetGameHandler 取得單一遊戲
// @Summary     Get a game
// @Tags        games
// @Produce     json
// @Param       id  path     string true "遊戲 ID"
// @Success     200 {object} api.GameResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /game/{id} [get]
func GetGameHandler(svc Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		g, err := svc.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.GameResponse{Data: g})
	}
}

// UpdateGameHandler 部分更新遊戲 (管理員)
// @Summary     Update a game
// @Description 只更新有提供的欄位，至少需要一個欄位
// @Tags        games
// @Accept      json
// @Produce     json
// @Param       id   path     string                true "遊戲 ID"
// @Param       body body     api.UpdateGameRequest true "要更新的欄位"
// @Success     200  {object} api.GameResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /game/{id} [put]
func UpdateGameHandler(svc Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateGameRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		g, err := svc.Update(c.Request().Context(), c.Param("id"), service.GameChanges{
			Title:       req.Title,
			Description: req.Description,
			Genre:       req.Genre,
			Platform:    req.Platform,
			ReleaseDate: req.ReleaseDate,
			CoverImage:  req.CoverImage,
		})
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.GameResponse{Message: "Game updated successfully", Data: g})
	}
}

// DeleteGameHandler 刪除遊戲 (管理員)，相關經驗保留
// @Summary     Delete a game
// @Tags        games
// @Produce     json
// @Param       id  path     string true "遊戲 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /game/{id} [delete]
func DeleteGameHandler(svc Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Game deleted successfully"})
	}
}
