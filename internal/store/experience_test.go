package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gamelog/internal/apperr"
	"gamelog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func experienceValues(e model.Experience) []any {
	return []any{e.ID, e.UserID, e.GameID, e.HoursPlayed, e.Rating, e.Review, e.CreatedAt, e.UpdatedAt}
}

func TestExperienceStore(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	sample := model.Experience{
		ID:          "e-1",
		UserID:      "u-1",
		GameID:      "g-1",
		HoursPlayed: 12.5,
		Rating:      4,
		Review:      "solid",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	t.Run("CreateExperience", func(t *testing.T) {
		t.Cleanup(restoreNewID())
		var c call
		e, err := CreateExperience(ctx, rowDB(&c, &fakeRow{values: []any{now, now}}), &model.Experience{
			UserID: "u-1", GameID: "g-1", HoursPlayed: 3, Rating: 5,
		})
		require.NoError(t, err)
		require.Equal(t, "id-1", e.ID)
		require.Equal(t, now, e.CreatedAt)
		require.Equal(t, []any{"id-1", "u-1", "g-1", float64(3), float64(5), ""}, c.args)
	})

	t.Run("CreateExperience duplicate", func(t *testing.T) {
		t.Cleanup(restoreNewID())
		var c call
		_, err := CreateExperience(ctx, rowDB(&c, &fakeRow{err: &pgconn.PgError{Code: "23505"}}), &model.Experience{})
		require.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("CreateExperience unknown owner", func(t *testing.T) {
		t.Cleanup(restoreNewID())
		var c call
		_, err := CreateExperience(ctx, rowDB(&c, &fakeRow{err: &pgconn.PgError{Code: "23503"}}), &model.Experience{})
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("CreateExperience other pg error", func(t *testing.T) {
		t.Cleanup(restoreNewID())
		var c call
		_, err := CreateExperience(ctx, rowDB(&c, &fakeRow{err: &pgconn.PgError{Code: "23514"}}), &model.Experience{})
		require.Error(t, err)
		require.NotErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("GetExperienceByID", func(t *testing.T) {
		var c call
		e, err := GetExperienceByID(ctx, rowDB(&c, &fakeRow{values: experienceValues(sample)}), "e-1")
		require.NoError(t, err)
		require.Equal(t, sample, *e)

		_, err = GetExperienceByID(ctx, rowDB(&c, &fakeRow{err: pgx.ErrNoRows}), "e-2")
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("ListExperiences filters", func(t *testing.T) {
		cases := []struct {
			name   string
			filter model.ExperienceFilter
			where  string
			args   []any
		}{
			{"all", model.ExperienceFilter{}, "", nil},
			{"by user", model.ExperienceFilter{UserID: "u-1"}, "WHERE user_id = $1", []any{"u-1"}},
			{"by game", model.ExperienceFilter{GameID: "g-1"}, "WHERE game_id = $1", []any{"g-1"}},
			{"both", model.ExperienceFilter{UserID: "u-1", GameID: "g-1"}, "WHERE user_id = $1 AND game_id = $2", []any{"u-1", "g-1"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				var c call
				list, err := ListExperiences(ctx, rowsDB(&c, &fakeRows{data: [][]any{experienceValues(sample)}}, nil), tc.filter)
				require.NoError(t, err)
				require.Len(t, list, 1)
				if tc.where == "" {
					require.NotContains(t, c.sql, "WHERE")
				} else {
					require.Contains(t, c.sql, tc.where)
				}
				require.Equal(t, tc.args, c.args)
				require.True(t, strings.HasSuffix(c.sql, "ORDER BY created_at DESC, id DESC"))
			})
		}
	})

	t.Run("ListExperiences empty and errors", func(t *testing.T) {
		var c call
		list, err := ListExperiences(ctx, rowsDB(&c, &fakeRows{}, nil), model.ExperienceFilter{})
		require.NoError(t, err)
		require.NotNil(t, list)
		require.Empty(t, list)

		_, err = ListExperiences(ctx, rowsDB(&c, nil, errors.New("q")), model.ExperienceFilter{})
		require.Error(t, err)
		_, err = ListExperiences(ctx, rowsDB(&c, &fakeRows{data: [][]any{{}}, scanErr: errors.New("s")}, nil), model.ExperienceFilter{})
		require.Error(t, err)
	})

	t.Run("UpdateExperience", func(t *testing.T) {
		var c call
		rating := 2.5
		updated := sample
		updated.Rating = rating
		e, err := UpdateExperience(ctx, rowDB(&c, &fakeRow{values: experienceValues(updated)}), "e-1", "u-1", model.ExperiencePatch{Rating: &rating})
		require.NoError(t, err)
		require.Equal(t, rating, e.Rating)
		require.Equal(t, "e-1", c.args[0])
		require.Equal(t, "u-1", c.args[1])
		require.Contains(t, c.sql, "WHERE id = $1 AND user_id = $2")

		_, err = UpdateExperience(ctx, rowDB(&c, &fakeRow{err: pgx.ErrNoRows}), "e-1", "u-2", model.ExperiencePatch{Rating: &rating})
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("DeleteExperience", func(t *testing.T) {
		var c call
		require.NoError(t, DeleteExperience(ctx, execDB(&c, "DELETE 1", nil), "e-1", "u-1"))
		require.Equal(t, []any{"e-1", "u-1"}, c.args)

		require.ErrorIs(t, DeleteExperience(ctx, execDB(&c, "DELETE 0", nil), "e-1", "u-1"), apperr.ErrNotFound)
		require.ErrorContains(t, DeleteExperience(ctx, execDB(&c, "", errors.New("x")), "e-1", "u-1"), "DeleteExperience")
	})
}
