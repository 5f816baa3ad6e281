// File: internal/store/game.go
package store

import (
	"context"
	"errors"
	"fmt"

	"gamelog/internal/apperr"
	"gamelog/internal/database"
	"gamelog/internal/model"

	"github.com/jackc/pgx/v5"
)

const gameColumns = `id, title, description, genre, platform, release_date, cover_image, created_at, updated_at`

func scanGame(row pgx.Row, g *model.Game) error {
	return row.Scan(
		&g.ID,
		&g.Title,
		&g.Description,
		&g.Genre,
		&g.Platform,
		&g.ReleaseDate,
		&g.CoverImage,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
}

func CreateGame(ctx context.Context, db database.Querier, g *model.Game) (*model.Game, error) {
	g.ID = newID()
	if g.Platform == nil {
		g.Platform = []string{}
	}
	row := db.QueryRow(ctx,
		`INSERT INTO games (id, title, description, genre, platform, release_date, cover_image)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		g.ID,
		g.Title,
		g.Description,
		g.Genre,
		g.Platform,
		g.ReleaseDate,
		g.CoverImage,
	)
	if err := row.Scan(&g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateGame: %w", err)
	}
	return g, nil
}

// ListGames 依建立順序回傳所有遊戲
func ListGames(ctx context.Context, db database.Querier) ([]model.Game, error) {
	rows, err := db.Query(ctx,
		`SELECT `+gameColumns+` FROM games ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListGames: %w", err)
	}
	defer rows.Close()

	games := []model.Game{}
	for rows.Next() {
		var g model.Game
		if err := scanGame(rows, &g); err != nil {
			return nil, fmt.Errorf("ListGames: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListGames: %w", err)
	}
	return games, nil
}

func GetGameByID(ctx context.Context, db database.Querier, id string) (*model.Game, error) {
	row := db.QueryRow(ctx,
		`SELECT `+gameColumns+` FROM games WHERE id = $1`,
		id,
	)
	g := &model.Game{}
	if err := scanGame(row, g); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("game not found")
		}
		return nil, fmt.Errorf("GetGameByID: %w", err)
	}
	return g, nil
}

// UpdateGame 以單一 UPDATE 合併非 nil 欄位並自動更新 updated_at
func UpdateGame(ctx context.Context, db database.Querier, id string, p model.GamePatch) (*model.Game, error) {
	row := db.QueryRow(ctx,
		`UPDATE games SET
		     title        = COALESCE($2, title),
		     description  = COALESCE($3, description),
		     genre        = COALESCE($4, genre),
		     platform     = COALESCE($5, platform),
		     release_date = COALESCE($6, release_date),
		     cover_image  = COALESCE($7, cover_image),
		     updated_at   = now()
		 WHERE id = $1
		 RETURNING `+gameColumns,
		id,
		p.Title,
		p.Description,
		p.Genre,
		p.Platform,
		p.ReleaseDate,
		p.CoverImage,
	)
	g := &model.Game{}
	if err := scanGame(row, g); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("game not found")
		}
		return nil, fmt.Errorf("UpdateGame: %w", err)
	}
	return g, nil
}

// DeleteGame 刪除遊戲；相關經驗不會一併刪除
func DeleteGame(ctx context.Context, db database.Querier, id string) error {
	tag, err := db.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteGame: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("game not found")
	}
	return nil
}

// GetGamesByIDs 一次取回多個遊戲，以 ID 為 key；已刪除的遊戲不會出現在結果中
func GetGamesByIDs(ctx context.Context, db database.Querier, ids []string) (map[string]model.Game, error) {
	out := make(map[string]model.Game, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := db.Query(ctx,
		`SELECT `+gameColumns+` FROM games WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("GetGamesByIDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var g model.Game
		if err := scanGame(rows, &g); err != nil {
			return nil, fmt.Errorf("GetGamesByIDs: %w", err)
		}
		out[g.ID] = g
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetGamesByIDs: %w", err)
	}
	return out, nil
}
