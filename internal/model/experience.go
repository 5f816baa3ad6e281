// File: internal/model/experience.go
package model

import "time"

type Experience struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	GameID      string    `db:"game_id" json:"gameId"`
	HoursPlayed float64   `db:"hours_played" json:"hoursPlayed"`
	Rating      float64   `db:"rating" json:"rating"`
	Review      string    `db:"review" json:"review"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// ExperiencePatch 僅允許修改時數、評分與心得
type ExperiencePatch struct {
	HoursPlayed *float64
	Rating      *float64
	Review      *string
}

func (p ExperiencePatch) Empty() bool {
	return p.HoursPlayed == nil && p.Rating == nil && p.Review == nil
}

// ExperienceFilter 空字串欄位表示不過濾
type ExperienceFilter struct {
	UserID string
	GameID string
}

// ExperienceEntry 是列表回傳的形狀：經驗本身加上解析後的使用者與遊戲
type ExperienceEntry struct {
	Experience
	User UserSummary `json:"user"`
	Game GameSummary `json:"game"`
}
