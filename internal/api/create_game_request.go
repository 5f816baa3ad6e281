package api

// swagger:model api.CreateGameRequest
type CreateGameRequest struct {
	Title       string   `json:"title" validate:"required" example:"Nova"`
	Description string   `json:"description" validate:"required" example:"A space shooter game"`
	Genre       string   `json:"genre" example:"Action"`
	Platform    []string `json:"platform" example:"PC,Switch"`
	// YYYY-MM-DD 或 RFC 3339
	ReleaseDate string `json:"releaseDate" example:"2024-01-01"`
	CoverImage  string `json:"coverImage" validate:"required" example:"https://example.com/nova.png"`
}
