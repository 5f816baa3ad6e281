// File: internal/handler/experiences/experiences.go
package experiences

import (
	"context"
	"net/http"

	"gamelog/internal/api"
	"gamelog/internal/middleware"
	"gamelog/internal/model"
	"gamelog/internal/service"

	"github.com/labstack/echo/v4"
)

// Service 由 *service.Experiences 實作
type Service interface {
	Create(ctx context.Context, userID string, in service.NewExperience) (*model.Experience, error)
	ListAll(ctx context.Context) ([]model.ExperienceEntry, error)
	ListByUser(ctx context.Context, userID string) ([]model.ExperienceEntry, error)
	ListByGame(ctx context.Context, gameID string) ([]model.ExperienceEntry, error)
	Update(ctx context.Context, actorID, id string, p model.ExperiencePatch) (*model.Experience, error)
	Delete(ctx context.Context, actorID, id string) error
}

func currentUserID(c echo.Context) (string, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	return claims.ID, nil
}

// CreateExperienceHandler 為目前使用者新增經驗
// @Summary     Log an experience
// @Description 同一使用者對同一遊戲只能記錄一次；gameId 與 game 擇一提供
// @Tags        experiences
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateExperienceRequest true "經驗資料"
// @Success     201  {object} model.Experience
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /experience [post]
func CreateExperienceHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		var req api.CreateExperienceRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		e, err := svc.Create(c.Request().Context(), userID, service.NewExperience{
			GameID:      req.TargetGameID(),
			HoursPlayed: req.HoursPlayed,
			Rating:      req.Rating,
			Review:      req.Review,
		})
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusCreated, e)
	}
}

// ListExperiencesHandler 列出所有經驗，附帶使用者與遊戲摘要
// @Summary     List experiences
// @Tags        experiences
// @Produce     json
// @Success     200 {array}  model.ExperienceEntry
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /experience [get]
func ListExperiencesHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := svc.ListAll(c.Request().Context())
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}
}

// ListUserExperiencesHandler 列出某使用者的經驗
// @Summary     List experiences by user
// @Tags        experiences
// @Produce     json
// @Param       userId path     string true "使用者 ID"
// @Success     200    {array}  model.ExperienceEntry
// @Failure     400    {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /experience/user/{userId} [get]
func ListUserExperiencesHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := svc.ListByUser(c.Request().Context(), c.Param("userId"))
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}
}

// ListGameExperiencesHandler 列出某遊戲的經驗
// @Summary     List experiences by game
// @Tags        experiences
// @Produce     json
// @Param       gameId path     string true "遊戲 ID"
// @Success     200    {array}  model.ExperienceEntry
// @Failure     400    {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /experience/game/{gameId} [get]
func ListGameExperiencesHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := svc.ListByGame(c.Request().Context(), c.Param("gameId"))
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}
}

// UpdateExperienceHandler 擁有者更新時數、評分或心得
// @Summary     Update an experience
// @Tags        experiences
// @Accept      json
// @Produce     json
// @Param       id   path     string                      true "經驗 ID"
// @Param       body body     api.UpdateExperienceRequest true "要更新的欄位"
// @Success     200  {object} model.Experience
// @Failure     400  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /experience/{id} [put]
func UpdateExperienceHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		var req api.UpdateExperienceRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		e, err := svc.Update(c.Request().Context(), userID, c.Param("id"), model.ExperiencePatch{
			HoursPlayed: req.HoursPlayed,
			Rating:      req.Rating,
			Review:      req.Review,
		})
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, e)
	}
}

// DeleteExperienceHandler 擁有者刪除經驗
// @Summary     Delete an experience
// @Tags        experiences
// @Produce     json
// @Param       id  path     string true "經驗 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /experience/{id} [delete]
func DeleteExperienceHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		if err := svc.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Experience deleted successfully"})
	}
}
