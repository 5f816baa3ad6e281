package api

// CreateExperienceRequest 接受 gameId 或 game 其中之一
// swagger:model api.CreateExperienceRequest
type CreateExperienceRequest struct {
	GameID      string  `json:"gameId" example:"3f1c2f9e-7a41-4c39-9a55-0c1f5b8a2d10"`
	Game        string  `json:"game" example:"3f1c2f9e-7a41-4c39-9a55-0c1f5b8a2d10"`
	HoursPlayed float64 `json:"hoursPlayed" validate:"gte=0" example:"12.5"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=10" example:"8"`
	Review      string  `json:"review" example:"Fun"`
}

// TargetGameID 回傳請求指定的遊戲 ID，gameId 優先
func (r CreateExperienceRequest) TargetGameID() string {
	if r.GameID != "" {
		return r.GameID
	}
	return r.Game
}
