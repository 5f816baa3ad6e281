// File: internal/service/service.go
package service

import (
	"gamelog/internal/apperr"
	"gamelog/internal/store"

	"github.com/google/uuid"
)

// store 呼叫集中在這裡，測試時可替換
var (
	createUser     = store.CreateUser
	getUserByEmail = store.GetUserByEmail
	getUsersByIDs  = store.GetUsersByIDs

	createGame    = store.CreateGame
	listGames     = store.ListGames
	getGameByID   = store.GetGameByID
	updateGame    = store.UpdateGame
	deleteGame    = store.DeleteGame
	getGamesByIDs = store.GetGamesByIDs

	createExperience  = store.CreateExperience
	getExperienceByID = store.GetExperienceByID
	listExperiences   = store.ListExperiences
	updateExperience  = store.UpdateExperience
	deleteExperience  = store.DeleteExperience
)

// validID 檢查 ID 是否為合法 UUID；what 用於錯誤訊息
func validID(what, id string) error {
	if id == "" {
		return apperr.Newf(apperr.ErrValidation, "%s id is required", what)
	}
	if _, err := uuid.Parse(id); err != nil {
		return apperr.Newf(apperr.ErrValidation, "invalid %s id", what)
	}
	return nil
}
