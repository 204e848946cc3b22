package purge_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliumhq/folium/internal/content/engine/enginetest"
	"github.com/foliumhq/folium/internal/content/project"
	"github.com/foliumhq/folium/internal/content/purge"
	"github.com/foliumhq/folium/pkg/uuidv7"
)

const owner = "11111111-1111-1111-1111-111111111111"

func TestPurgeOwner_FanOut(t *testing.T) {
	projects := enginetest.New[project.Project, *project.Project]("Project", true, true)
	for i := 0; i < 3; i++ {
		record := &project.Project{Title: "p"}
		record.ID = uuidv7.New()
		record.OwnerID = owner
		projects.Seed(record)
	}

	var skillsRemoved int64 = 7
	service := purge.NewService([]purge.Target{
		{Name: "projects", Purger: projects},
		{Name: "skills", Purger: purge.PurgerFunc(func(ctx context.Context, ownerID string) (int64, error) {
			return skillsRemoved, nil
		})},
	}, slog.Default())

	result := service.PurgeOwner(context.Background(), owner)

	assert.Equal(t, int64(3), result.Removed["projects"])
	assert.Equal(t, int64(7), result.Removed["skills"])
	assert.Empty(t, result.Failures)
}

func TestPurgeOwner_CollectsFailuresWithoutAborting(t *testing.T) {
	succeeded := purge.PurgerFunc(func(ctx context.Context, ownerID string) (int64, error) {
		return 2, nil
	})
	failed := purge.PurgerFunc(func(ctx context.Context, ownerID string) (int64, error) {
		return 0, errors.New("connection refused")
	})

	service := purge.NewService([]purge.Target{
		{Name: "blog", Purger: failed},
		{Name: "contacts", Purger: succeeded},
		{Name: "companies", Purger: failed},
	}, slog.Default())

	result := service.PurgeOwner(context.Background(), owner)

	require.Equal(t, []string{"blog", "companies"}, result.Failures)
	assert.Equal(t, int64(2), result.Removed["contacts"])
	_, blogCounted := result.Removed["blog"]
	assert.False(t, blogCounted)
}
