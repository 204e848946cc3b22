package project_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/content/engine/enginetest"
	"github.com/foliumhq/folium/internal/content/project"
	"github.com/foliumhq/folium/internal/platform/apperr"
	"github.com/foliumhq/folium/pkg/uuidv7"
)

const (
	ownerAlice = "11111111-1111-1111-1111-111111111111"
	ownerBob   = "22222222-2222-2222-2222-222222222222"
)

func newService() (*project.Service, *enginetest.Store[project.Project, *project.Project]) {
	store := enginetest.New[project.Project, *project.Project]("Project", true, true)
	return project.NewService(store, slog.Default()), store
}

func seed(store *enginetest.Store[project.Project, *project.Project], ownerID, title string) *project.Project {
	record := &project.Project{Title: title}
	record.ID = uuidv7.New()
	record.OwnerID = ownerID
	store.Seed(record)
	return record
}

func TestCreateProject_Validation(t *testing.T) {
	service, store := newService()

	badURL := "not-a-url"
	tests := []struct {
		name  string
		input project.Project
	}{
		{"missing_title", project.Project{}},
		{"bad_repo_url", project.Project{Title: "Folium", RepoURL: &badURL}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := service.CreateProject(context.Background(), ownerAlice, &tc.input)
			require.Error(t, err)
			assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestCreateProject_AssignsIdentity(t *testing.T) {
	service, _ := newService()

	input := project.Project{Title: "Folium", Technologies: []string{"go", "postgres"}}
	require.NoError(t, service.CreateProject(context.Background(), ownerAlice, &input))

	assert.NotEmpty(t, input.ID)
	assert.False(t, input.CreatedAt.IsZero())
}

func TestUpdateProject_OwnershipGuard(t *testing.T) {
	service, store := newService()
	record := seed(store, ownerBob, "Bob's project")

	_, err := service.UpdateProject(context.Background(), ownerAlice, record.ID, &project.Project{Title: "Hijacked"})
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeForbidden))

	_, err = service.UpdateProject(context.Background(), ownerAlice, uuidv7.New(), &project.Project{Title: "Ghost"})
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestDeleteProject_SoftAndIdempotent(t *testing.T) {
	service, store := newService()
	record := seed(store, ownerAlice, "Short lived")

	ctx := context.Background()
	require.NoError(t, service.DeleteProject(ctx, ownerAlice, record.ID))

	// Soft delete keeps the row but hides it from default reads.
	assert.Equal(t, 1, store.Len())
	_, err := service.GetProject(ctx, ownerAlice, record.ID)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))

	// A repeat delete is NOT_FOUND, not a silent success.
	err = service.DeleteProject(ctx, ownerAlice, record.ID)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestRestoreProject(t *testing.T) {
	service, store := newService()
	record := seed(store, ownerAlice, "Resurrected")

	ctx := context.Background()
	require.NoError(t, service.DeleteProject(ctx, ownerAlice, record.ID))
	require.NoError(t, service.RestoreProject(ctx, ownerAlice, record.ID))

	restored, err := service.GetProject(ctx, ownerAlice, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Resurrected", restored.Title)
}

func TestListProjects_DeletedVisibility(t *testing.T) {
	service, store := newService()
	kept := seed(store, ownerAlice, "Kept")
	gone := seed(store, ownerAlice, "Gone")

	ctx := context.Background()
	require.NoError(t, service.DeleteProject(ctx, ownerAlice, gone.ID))

	active, total, err := service.ListProjects(ctx, ownerAlice, project.Filter{}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, kept.ID, active[0].ID)

	deleted, total, err := service.ListProjects(ctx, ownerAlice, project.Filter{Deleted: engine.DeletedOnly}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, gone.ID, deleted[0].ID)
}

func TestBulkDeleteProjects_PartialFailure(t *testing.T) {
	service, store := newService()
	mine := seed(store, ownerAlice, "Mine")
	other := seed(store, ownerBob, "Not mine")
	already := seed(store, ownerAlice, "Already gone")

	ctx := context.Background()
	require.NoError(t, service.DeleteProject(ctx, ownerAlice, already.ID))

	missing := uuidv7.New()
	result, err := service.BulkDeleteProjects(ctx, ownerAlice, []string{mine.ID, other.ID, missing, already.ID})
	require.NoError(t, err)

	assert.Equal(t, 1, result.DeletedCount)
	assert.ElementsMatch(t, []string{other.ID, missing, already.ID}, result.FailedIDs)

	// The foreign record is untouched.
	_, err = service.GetProject(ctx, ownerBob, other.ID)
	assert.NoError(t, err)
}

func TestReorderProjects(t *testing.T) {
	service, store := newService()
	first := seed(store, ownerAlice, "First")
	second := seed(store, ownerAlice, "Second")
	third := seed(store, ownerAlice, "Third")

	ctx := context.Background()
	require.NoError(t, service.ReorderProjects(ctx, ownerAlice, []string{third.ID, first.ID, second.ID}))

	assert.Equal(t, 0, store.Order(third.ID))
	assert.Equal(t, 1, store.Order(first.ID))
	assert.Equal(t, 2, store.Order(second.ID))
}

func TestReorderProjects_PreconditionBlocksAllWrites(t *testing.T) {
	service, store := newService()
	mine := seed(store, ownerAlice, "Mine")
	foreign := seed(store, ownerBob, "Foreign")

	err := service.ReorderProjects(context.Background(), ownerAlice, []string{mine.ID, foreign.ID})
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeForbidden))

	// Nothing moved.
	assert.Equal(t, 0, store.Order(mine.ID))
	assert.Equal(t, 0, store.Order(foreign.ID))
}

func TestProjectService_Unavailable(t *testing.T) {
	service, store := newService()
	store.FailWith = apperr.Unavailable(assert.AnError)

	_, _, err := service.ListProjects(context.Background(), ownerAlice, project.Filter{}, 20, 0)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeUnavailable))
}
