package api

import "gamelog/internal/model"

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"Game not found"`
}

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Game deleted successfully"`
}

// swagger:model api.GameResponse
type GameResponse struct {
	Message string      `json:"message,omitempty" example:"Game created successfully"`
	Data    *model.Game `json:"data"`
}

// swagger:model api.GameListResponse
type GameListResponse struct {
	Data []model.Game `json:"data"`
}
