// File: internal/service/catalog.go
package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"gamelog/internal/apperr"
	"gamelog/internal/database"
	"gamelog/internal/model"
)

const minDescriptionLen = 10

// NewGame 為建立遊戲的輸入；ReleaseDate 為空字串表示未提供
type NewGame struct {
	Title       string
	Description string
	Genre       string
	Platform    []string
	ReleaseDate string
	CoverImage  string
}

// GameChanges 為部分更新的輸入，nil 代表不變更
type GameChanges struct {
	Title       *string
	Description *string
	Genre       *string
	Platform    *[]string
	ReleaseDate *string
	CoverImage  *string
}

// Catalog 管理遊戲目錄；權限檢查在路由層
type Catalog struct {
	db database.DB
}

func NewCatalog(db database.DB) *Catalog {
	return &Catalog{db: db}
}

// ParseReleaseDate 接受 YYYY-MM-DD 或 RFC 3339，空字串回傳 nil
func ParseReleaseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	return nil, apperr.Validation("releaseDate must be YYYY-MM-DD or RFC 3339")
}

func validDescription(d string) error {
	if utf8.RuneCountInString(strings.TrimSpace(d)) < minDescriptionLen {
		return apperr.Newf(apperr.ErrValidation, "Description must be at least %d characters", minDescriptionLen)
	}
	return nil
}

func (s *Catalog) Create(ctx context.Context, in NewGame) (*model.Game, error) {
	title := strings.TrimSpace(in.Title)
	cover := strings.TrimSpace(in.CoverImage)
	if title == "" || strings.TrimSpace(in.Description) == "" || cover == "" {
		return nil, apperr.Validation("Title, description and coverImage are required")
	}
	if err := validDescription(in.Description); err != nil {
		return nil, err
	}
	release, err := ParseReleaseDate(in.ReleaseDate)
	if err != nil {
		return nil, err
	}

	return createGame(ctx, s.db, &model.Game{
		Title:       title,
		Description: in.Description,
		Genre:       strings.TrimSpace(in.Genre),
		Platform:    in.Platform,
		ReleaseDate: release,
		CoverImage:  cover,
	})
}

func (s *Catalog) List(ctx context.Context) ([]model.Game, error) {
	return listGames(ctx, s.db)
}

func (s *Catalog) Get(ctx context.Context, id string) (*model.Game, error) {
	if err := validID("game", id); err != nil {
		return nil, err
	}
	return getGameByID(ctx, s.db, id)
}

// Update 合併有提供的欄位；空 patch 視為驗證錯誤
func (s *Catalog) Update(ctx context.Context, id string, in GameChanges) (*model.Game, error) {
	if err := validID("game", id); err != nil {
		return nil, err
	}

	var p model.GamePatch
	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if t == "" {
			return nil, apperr.Validation("Title cannot be empty")
		}
		p.Title = &t
	}
	if in.Description != nil {
		if err := validDescription(*in.Description); err != nil {
			return nil, err
		}
		p.Description = in.Description
	}
	if in.Genre != nil {
		g := strings.TrimSpace(*in.Genre)
		p.Genre = &g
	}
	if in.Platform != nil {
		platform := *in.Platform
		if platform == nil {
			platform = []string{}
		}
		p.Platform = &platform
	}
	if in.ReleaseDate != nil {
		release, err := ParseReleaseDate(*in.ReleaseDate)
		if err != nil {
			return nil, err
		}
		if release == nil {
			return nil, apperr.Validation("releaseDate must be YYYY-MM-DD or RFC 3339")
		}
		p.ReleaseDate = release
	}
	if in.CoverImage != nil {
		c := strings.TrimSpace(*in.CoverImage)
		if c == "" {
			return nil, apperr.Validation("coverImage cannot be empty")
		}
		p.CoverImage = &c
	}
	if p.Empty() {
		return nil, apperr.Validation("Update data is required")
	}

	return updateGame(ctx, s.db, id, p)
}

// Delete 刪除遊戲，相關經驗保留
func (s *Catalog) Delete(ctx context.Context, id string) error {
	if err := validID("game", id); err != nil {
		return err
	}
	return deleteGame(ctx, s.db, id)
}
