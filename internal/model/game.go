// File: internal/model/game.go
package model

import "time"

type Game struct {
	ID          string     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Genre       string     `db:"genre" json:"genre"`
	Platform    []string   `db:"platform" json:"platform"`
	ReleaseDate *time.Time `db:"release_date" json:"releaseDate,omitempty"`
	CoverImage  string     `db:"cover_image" json:"coverImage"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

// GamePatch 部分更新，nil 代表不變更
type GamePatch struct {
	Title       *string
	Description *string
	Genre       *string
	Platform    *[]string
	ReleaseDate *time.Time
	CoverImage  *string
}

// Empty 回傳 patch 是否沒有任何欄位
func (p GamePatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Genre == nil &&
		p.Platform == nil && p.ReleaseDate == nil && p.CoverImage == nil
}

// GameSummary 為經驗列表中解析出的遊戲摘要；遊戲已刪除時 Deleted 為 true
type GameSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title,omitempty"`
	CoverImage string `json:"coverImage,omitempty"`
	Deleted    bool   `json:"deleted,omitempty"`
}
