// File: internal/service/experiences.go
package service

import (
	"context"
	"math"
	"strings"

	"gamelog/internal/apperr"
	"gamelog/internal/database"
	"gamelog/internal/model"
	"gamelog/internal/worker"
)

const (
	minRating = 0
	maxRating = 10
)

// NewExperience 為建立經驗的輸入
type NewExperience struct {
	GameID      string
	HoursPlayed float64
	Rating      float64
	Review      string
}

// Experiences 管理使用者的遊玩紀錄；列表時以 worker pool 並行解析使用者與遊戲
type Experiences struct {
	db      database.DB
	workers worker.Pool
}

func NewExperiences(db database.DB, workers worker.Pool) *Experiences {
	return &Experiences{db: db, workers: workers}
}

func validHours(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return apperr.Validation("hoursPlayed cannot be negative")
	}
	return nil
}

func validRating(r float64) error {
	if math.IsNaN(r) || r < minRating || r > maxRating {
		return apperr.Newf(apperr.ErrValidation, "Rating must be between %d and %d", minRating, maxRating)
	}
	return nil
}

// Create 為 userID 新增一筆經驗；遊戲必須存在，同一遊戲只能記錄一次
func (s *Experiences) Create(ctx context.Context, userID string, in NewExperience) (*model.Experience, error) {
	gameID := strings.TrimSpace(in.GameID)
	if gameID == "" {
		return nil, apperr.Validation("Game is required")
	}
	if err := validID("game", gameID); err != nil {
		return nil, err
	}
	if err := validHours(in.HoursPlayed); err != nil {
		return nil, err
	}
	if err := validRating(in.Rating); err != nil {
		return nil, err
	}

	if _, err := getGameByID(ctx, s.db, gameID); err != nil {
		return nil, err
	}

	return createExperience(ctx, s.db, &model.Experience{
		UserID:      userID,
		GameID:      gameID,
		HoursPlayed: in.HoursPlayed,
		Rating:      in.Rating,
		Review:      in.Review,
	})
}

func (s *Experiences) ListAll(ctx context.Context) ([]model.ExperienceEntry, error) {
	return s.list(ctx, model.ExperienceFilter{}, false)
}

// ListByUser 回傳某使用者的經驗，使用者摘要包含 email
func (s *Experiences) ListByUser(ctx context.Context, userID string) ([]model.ExperienceEntry, error) {
	if err := validID("user", userID); err != nil {
		return nil, err
	}
	return s.list(ctx, model.ExperienceFilter{UserID: userID}, true)
}

func (s *Experiences) ListByGame(ctx context.Context, gameID string) ([]model.ExperienceEntry, error) {
	if err := validID("game", gameID); err != nil {
		return nil, err
	}
	return s.list(ctx, model.ExperienceFilter{GameID: gameID}, false)
}

func (s *Experiences) list(ctx context.Context, f model.ExperienceFilter, withEmail bool) ([]model.ExperienceEntry, error) {
	items, err := listExperiences(ctx, s.db, f)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, items, withEmail)
}

// resolve 批次查詢引用的使用者與遊戲；找不到的引用標記為 deleted
func (s *Experiences) resolve(ctx context.Context, items []model.Experience, withEmail bool) ([]model.ExperienceEntry, error) {
	entries := make([]model.ExperienceEntry, 0, len(items))
	if len(items) == 0 {
		return entries, nil
	}

	userIDs := make([]string, 0, len(items))
	gameIDs := make([]string, 0, len(items))
	seenUser := make(map[string]struct{}, len(items))
	seenGame := make(map[string]struct{}, len(items))
	for _, e := range items {
		if _, ok := seenUser[e.UserID]; !ok {
			seenUser[e.UserID] = struct{}{}
			userIDs = append(userIDs, e.UserID)
		}
		if _, ok := seenGame[e.GameID]; !ok {
			seenGame[e.GameID] = struct{}{}
			gameIDs = append(gameIDs, e.GameID)
		}
	}

	var (
		users map[string]model.User
		games map[string]model.Game
	)
	err := worker.Run(ctx, s.workers,
		func(ctx context.Context) (err error) {
			users, err = getUsersByIDs(ctx, s.db, userIDs)
			return err
		},
		func(ctx context.Context) (err error) {
			games, err = getGamesByIDs(ctx, s.db, gameIDs)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	for _, e := range items {
		entry := model.ExperienceEntry{Experience: e}
		if u, ok := users[e.UserID]; ok {
			entry.User = model.UserSummary{ID: u.ID, Username: u.Username}
			if withEmail {
				entry.User.Email = u.Email
			}
		} else {
			entry.User = model.UserSummary{ID: e.UserID, Deleted: true}
		}
		if g, ok := games[e.GameID]; ok {
			entry.Game = model.GameSummary{ID: g.ID, Title: g.Title, CoverImage: g.CoverImage}
		} else {
			entry.Game = model.GameSummary{ID: e.GameID, Deleted: true}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ownedExperience 取回經驗並確認 actorID 為擁有者
func (s *Experiences) ownedExperience(ctx context.Context, actorID, id string) (*model.Experience, error) {
	if err := validID("experience", id); err != nil {
		return nil, err
	}
	e, err := getExperienceByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if e.UserID != actorID {
		return nil, apperr.New(apperr.ErrForbidden, "You can only modify your own experiences")
	}
	return e, nil
}

// Update 只允許擁有者修改時數、評分與心得
func (s *Experiences) Update(ctx context.Context, actorID, id string, p model.ExperiencePatch) (*model.Experience, error) {
	if err := validID("experience", id); err != nil {
		return nil, err
	}
	if p.Empty() {
		return nil, apperr.Validation("Update data is required")
	}
	if p.HoursPlayed != nil {
		if err := validHours(*p.HoursPlayed); err != nil {
			return nil, err
		}
	}
	if p.Rating != nil {
		if err := validRating(*p.Rating); err != nil {
			return nil, err
		}
	}

	if _, err := s.ownedExperience(ctx, actorID, id); err != nil {
		return nil, err
	}
	return updateExperience(ctx, s.db, id, actorID, p)
}

func (s *Experiences) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.ownedExperience(ctx, actorID, id); err != nil {
		return err
	}
	return deleteExperience(ctx, s.db, id, actorID)
}
