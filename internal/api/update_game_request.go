package api

// UpdateGameRequest 未提供的欄位維持原值
// swagger:model api.UpdateGameRequest
type UpdateGameRequest struct {
	Title       *string   `json:"title,omitempty" example:"Nova Remastered"`
	Description *string   `json:"description,omitempty" example:"A space shooter game, remastered"`
	Genre       *string   `json:"genre,omitempty" example:"Action"`
	Platform    *[]string `json:"platform,omitempty" example:"PC,PS5"`
	ReleaseDate *string   `json:"releaseDate,omitempty" example:"2025-05-05"`
	CoverImage  *string   `json:"coverImage,omitempty" example:"https://example.com/nova2.png"`
}
