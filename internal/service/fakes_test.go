package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"gamelog/internal/apperr"
	"gamelog/internal/database"
	"gamelog/internal/model"
	"gamelog/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newTestTokens(t *testing.T) *Tokens {
	t.Helper()
	tokens, err := NewTokens(testSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return tokens
}

func restoreGlobals() {
	createUser = store.CreateUser
	getUserByEmail = store.GetUserByEmail
	getUsersByIDs = store.GetUsersByIDs
	createGame = store.CreateGame
	listGames = store.ListGames
	getGameByID = store.GetGameByID
	updateGame = store.UpdateGame
	deleteGame = store.DeleteGame
	getGamesByIDs = store.GetGamesByIDs
	createExperience = store.CreateExperience
	getExperienceByID = store.GetExperienceByID
	listExperiences = store.ListExperiences
	updateExperience = store.UpdateExperience
	deleteExperience = store.DeleteExperience
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	passwordCost = 10
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
}

// memStore 以記憶體模擬 store 層，透過 package 變數注入
type memStore struct {
	mu        sync.Mutex
	clock     time.Time
	users     map[string]model.User
	games     map[string]model.Game
	gameOrder []string
	exps      map[string]model.Experience
	expOrder  []string
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func installMemStore(t *testing.T) *memStore {
	t.Helper()
	t.Cleanup(restoreGlobals)
	passwordCost = bcrypt.MinCost

	m := &memStore{
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users: map[string]model.User{},
		games: map[string]model.Game{},
		exps:  map[string]model.Experience{},
	}

	createUser = func(_ context.Context, _ database.Querier, u *model.User) (*model.User, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		for _, existing := range m.users {
			if existing.Email == u.Email {
				return nil, apperr.New(apperr.ErrConflict, "user already exists")
			}
		}
		u.ID = uuid.NewString()
		if u.Role == "" {
			u.Role = model.RoleUser
		}
		u.CreatedAt = m.tick()
		m.users[u.ID] = *u
		return u, nil
	}
	getUserByEmail = func(_ context.Context, _ database.Querier, email string) (*model.User, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		for _, u := range m.users {
			if u.Email == email {
				u := u
				return &u, nil
			}
		}
		return nil, apperr.NotFound("user not found")
	}
	getUsersByIDs = func(_ context.Context, _ database.Querier, ids []string) (map[string]model.User, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		out := map[string]model.User{}
		for _, id := range ids {
			if u, ok := m.users[id]; ok {
				out[id] = u
			}
		}
		return out, nil
	}

	createGame = func(_ context.Context, _ database.Querier, g *model.Game) (*model.Game, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		g.ID = uuid.NewString()
		if g.Platform == nil {
			g.Platform = []string{}
		}
		g.CreatedAt = m.tick()
		g.UpdatedAt = g.CreatedAt
		m.games[g.ID] = *g
		m.gameOrder = append(m.gameOrder, g.ID)
		return g, nil
	}
	listGames = func(context.Context, database.Querier) ([]model.Game, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		out := []model.Game{}
		for _, id := range m.gameOrder {
			if g, ok := m.games[id]; ok {
				out = append(out, g)
			}
		}
		return out, nil
	}
	getGameByID = func(_ context.Context, _ database.Querier, id string) (*model.Game, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		g, ok := m.games[id]
		if !ok {
			return nil, apperr.NotFound("game not found")
		}
		return &g, nil
	}
	updateGame = func(_ context.Context, _ database.Querier, id string, p model.GamePatch) (*model.Game, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		g, ok := m.games[id]
		if !ok {
			return nil, apperr.NotFound("game not found")
		}
		if p.Title != nil {
			g.Title = *p.Title
		}
		if p.Description != nil {
			g.Description = *p.Description
		}
		if p.Genre != nil {
			g.Genre = *p.Genre
		}
		if p.Platform != nil {
			g.Platform = *p.Platform
		}
		if p.ReleaseDate != nil {
			g.ReleaseDate = p.ReleaseDate
		}
		if p.CoverImage != nil {
			g.CoverImage = *p.CoverImage
		}
		g.UpdatedAt = m.tick()
		m.games[id] = g
		return &g, nil
	}
	deleteGame = func(_ context.Context, _ database.Querier, id string) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, ok := m.games[id]; !ok {
			return apperr.NotFound("game not found")
		}
		delete(m.games, id)
		return nil
	}
	getGamesByIDs = func(_ context.Context, _ database.Querier, ids []string) (map[string]model.Game, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		out := map[string]model.Game{}
		for _, id := range ids {
			if g, ok := m.games[id]; ok {
				out[id] = g
			}
		}
		return out, nil
	}

	createExperience = func(_ context.Context, _ database.Querier, e *model.Experience) (*model.Experience, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		for _, existing := range m.exps {
			if existing.UserID == e.UserID && existing.GameID == e.GameID {
				return nil, apperr.New(apperr.ErrConflict, "experience for this game already exists")
			}
		}
		e.ID = uuid.NewString()
		e.CreatedAt = m.tick()
		e.UpdatedAt = e.CreatedAt
		m.exps[e.ID] = *e
		m.expOrder = append(m.expOrder, e.ID)
		return e, nil
	}
	getExperienceByID = func(_ context.Context, _ database.Querier, id string) (*model.Experience, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		e, ok := m.exps[id]
		if !ok {
			return nil, apperr.NotFound("experience not found")
		}
		return &e, nil
	}
	listExperiences = func(_ context.Context, _ database.Querier, f model.ExperienceFilter) ([]model.Experience, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		out := []model.Experience{}
		for _, id := range m.expOrder {
			e, ok := m.exps[id]
			if !ok {
				continue
			}
			if f.UserID != "" && e.UserID != f.UserID {
				continue
			}
			if f.GameID != "" && e.GameID != f.GameID {
				continue
			}
			out = append(out, e)
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
		return out, nil
	}
	updateExperience = func(_ context.Context, _ database.Querier, id, ownerID string, p model.ExperiencePatch) (*model.Experience, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		e, ok := m.exps[id]
		if !ok || e.UserID != ownerID {
			return nil, apperr.NotFound("experience not found")
		}
		if p.HoursPlayed != nil {
			e.HoursPlayed = *p.HoursPlayed
		}
		if p.Rating != nil {
			e.Rating = *p.Rating
		}
		if p.Review != nil {
			e.Review = *p.Review
		}
		e.UpdatedAt = m.tick()
		m.exps[id] = e
		return &e, nil
	}
	deleteExperience = func(_ context.Context, _ database.Querier, id, ownerID string) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		e, ok := m.exps[id]
		if !ok || e.UserID != ownerID {
			return apperr.NotFound("experience not found")
		}
		delete(m.exps, id)
		return nil
	}
	return m
}

// addUser 直接寫入一位使用者並回傳 ID
func (m *memStore) addUser(username, email, role string) string {
	u, _ := createUser(context.Background(), nil, &model.User{Username: username, Email: email, Role: role})
	return u.ID
}
