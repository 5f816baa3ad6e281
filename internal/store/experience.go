// File: internal/store/experience.go
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gamelog/internal/apperr"
	"gamelog/internal/database"
	"gamelog/internal/model"

	"github.com/jackc/pgx/v5"
)

const experienceColumns = `id, user_id, game_id, hours_played, rating, review, created_at, updated_at`

func scanExperience(row pgx.Row, e *model.Experience) error {
	return row.Scan(
		&e.ID,
		&e.UserID,
		&e.GameID,
		&e.HoursPlayed,
		&e.Rating,
		&e.Review,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
}

// CreateExperience 新增一筆經驗；同一使用者對同一遊戲重複記錄時回傳 ErrConflict
func CreateExperience(ctx context.Context, db database.Querier, e *model.Experience) (*model.Experience, error) {
	e.ID = newID()
	row := db.QueryRow(ctx,
		`INSERT INTO experiences (id, user_id, game_id, hours_played, rating, review)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		e.ID,
		e.UserID,
		e.GameID,
		e.HoursPlayed,
		e.Rating,
		e.Review,
	)
	if err := row.Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.New(apperr.ErrConflict, "experience for this game already exists")
		}
		// user_id 有外鍵，擁有者不存在時
		if hasCode(err, foreignKeyViolation) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, fmt.Errorf("CreateExperience: %w", err)
	}
	return e, nil
}

func GetExperienceByID(ctx context.Context, db database.Querier, id string) (*model.Experience, error) {
	row := db.QueryRow(ctx,
		`SELECT `+experienceColumns+` FROM experiences WHERE id = $1`,
		id,
	)
	e := &model.Experience{}
	if err := scanExperience(row, e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("experience not found")
		}
		return nil, fmt.Errorf("GetExperienceByID: %w", err)
	}
	return e, nil
}

// ListExperiences 依 filter 過濾，新到舊排序
func ListExperiences(ctx context.Context, db database.Querier, f model.ExperienceFilter) ([]model.Experience, error) {
	var (
		where []string
		args  []any
	)
	if f.UserID != "" {
		args = append(args, f.UserID)
		where = append(where, "user_id = $"+strconv.Itoa(len(args)))
	}
	if f.GameID != "" {
		args = append(args, f.GameID)
		where = append(where, "game_id = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + experienceColumns + ` FROM experiences`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListExperiences: %w", err)
	}
	defer rows.Close()

	list := []model.Experience{}
	for rows.Next() {
		var e model.Experience
		if err := scanExperience(rows, &e); err != nil {
			return nil, fmt.Errorf("ListExperiences: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListExperiences: %w", err)
	}
	return list, nil
}

// UpdateExperience 只更新屬於 ownerID 的經驗
func UpdateExperience(ctx context.Context, db database.Querier, id, ownerID string, p model.ExperiencePatch) (*model.Experience, error) {
	row := db.QueryRow(ctx,
		`UPDATE experiences SET
		     hours_played = COALESCE($3, hours_played),
		     rating       = COALESCE($4, rating),
		     review       = COALESCE($5, review),
		     updated_at   = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+experienceColumns,
		id,
		ownerID,
		p.HoursPlayed,
		p.Rating,
		p.Review,
	)
	e := &model.Experience{}
	if err := scanExperience(row, e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("experience not found")
		}
		return nil, fmt.Errorf("UpdateExperience: %w", err)
	}
	return e, nil
}

// DeleteExperience 只刪除屬於 ownerID 的經驗
func DeleteExperience(ctx context.Context, db database.Querier, id, ownerID string) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM experiences WHERE id = $1 AND user_id = $2`,
		id,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("DeleteExperience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("experience not found")
	}
	return nil
}
