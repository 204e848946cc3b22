package project_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliumhq/folium/internal/content/engine/enginetest"
	"github.com/foliumhq/folium/internal/content/project"
	"github.com/foliumhq/folium/internal/platform/ctxutil"
	"github.com/foliumhq/folium/internal/platform/sec"
)

func TestPatchProject_OmittedFieldsKeepStoredValues(t *testing.T) {
	store := enginetest.New[project.Project, *project.Project]("Project", true, true)
	service := project.NewService(store, slog.Default())

	router := chi.NewRouter()
	project.NewHandler(service).RegisterRoutes(router)

	ctx := context.Background()
	seeded := project.Project{Title: "Folium", Featured: true, Technologies: []string{"go", "postgres"}}
	require.NoError(t, service.CreateProject(ctx, ownerAlice, &seeded))

	request := httptest.NewRequest(http.MethodPatch, "/"+seeded.ID, strings.NewReader(`{"title":"Folium API"}`))
	request = request.WithContext(ctxutil.WithOwner(request.Context(), &sec.AuthClaims{OwnerID: ownerAlice}))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	record, err := service.GetProject(ctx, ownerAlice, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Folium API", record.Title)
	assert.True(t, record.Featured)
	assert.Equal(t, []string{"go", "postgres"}, record.Technologies)
}
