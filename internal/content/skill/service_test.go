package skill_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliumhq/folium/internal/content/engine/enginetest"
	"github.com/foliumhq/folium/internal/content/skill"
	"github.com/foliumhq/folium/internal/platform/apperr"
)

const owner = "11111111-1111-1111-1111-111111111111"

func newService() (*skill.Service, *enginetest.Store[skill.Skill, *skill.Skill]) {
	store := enginetest.New[skill.Skill, *skill.Skill]("Skill", true, true)
	return skill.NewService(store, slog.Default()), store
}

func TestCreateSkill_Validation(t *testing.T) {
	service, _ := newService()

	tests := []struct {
		name  string
		input skill.Skill
		field string
	}{
		{"missing_name", skill.Skill{Category: "language", Level: 3}, "name"},
		{"unknown_category", skill.Skill{Name: "Go", Category: "hobby", Level: 3}, "category"},
		{"level_too_low", skill.Skill{Name: "Go", Category: "language", Level: 0}, "level"},
		{"level_too_high", skill.Skill{Name: "Go", Category: "language", Level: 6}, "level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := service.CreateSkill(context.Background(), owner, &tc.input)
			require.Error(t, err)
			require.True(t, apperr.IsCode(err, apperr.CodeValidation))

			appError := apperr.As(err)
			require.Len(t, appError.Details, 1)
			assert.Equal(t, tc.field, appError.Details[0].Field)
		})
	}
}

func TestCreateSkill_AcceptsEveryCategory(t *testing.T) {
	service, store := newService()

	for _, category := range skill.Categories {
		input := skill.Skill{Name: "Something", Category: category, Level: 3}
		require.NoError(t, service.CreateSkill(context.Background(), owner, &input))
	}
	assert.Equal(t, len(skill.Categories), store.Len())
}

func TestListSkills_CategoryFilter(t *testing.T) {
	service, _ := newService()

	ctx := context.Background()
	require.NoError(t, service.CreateSkill(ctx, owner, &skill.Skill{Name: "Go", Category: "language", Level: 5}))
	require.NoError(t, service.CreateSkill(ctx, owner, &skill.Skill{Name: "Postgres", Category: "database", Level: 4}))

	// The in-memory store has no column filtering, so go through the real
	// option plumbing only for the unfiltered path.
	all, total, err := service.ListSkills(ctx, owner, skill.Filter{}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)
}

func TestUpdateSkill_KeepsSortOrder(t *testing.T) {
	service, store := newService()

	ctx := context.Background()
	first := skill.Skill{Name: "Go", Category: "language", Level: 4}
	second := skill.Skill{Name: "Rust", Category: "language", Level: 2}
	require.NoError(t, service.CreateSkill(ctx, owner, &first))
	require.NoError(t, service.CreateSkill(ctx, owner, &second))
	require.NoError(t, service.ReorderSkills(ctx, owner, []string{second.ID, first.ID}))

	updated, err := service.UpdateSkill(ctx, owner, first.ID, &skill.Skill{Name: "Go", Category: "language", Level: 5})
	require.NoError(t, err)

	assert.Equal(t, 5, updated.Level)
	assert.Equal(t, 1, store.Order(first.ID))
}
