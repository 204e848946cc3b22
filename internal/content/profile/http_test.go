package profile_test

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

	"github.com/foliumhq/folium/internal/content/profile"
	"github.com/foliumhq/folium/internal/platform/ctxutil"
	"github.com/foliumhq/folium/internal/platform/sec"
	"github.com/foliumhq/folium/pkg/pointer"
)

func newRouter(service *profile.Service) *chi.Mux {
	router := chi.NewRouter()
	profile.NewHandler(service).RegisterRoutes(router)
	return router
}

func authenticated(request *http.Request, ownerID string) *http.Request {
	return request.WithContext(ctxutil.WithOwner(request.Context(), &sec.AuthClaims{OwnerID: ownerID}))
}

func TestPatchProfile_OmittedFieldsKeepStoredValues(t *testing.T) {
	store := newMemStore()
	service := profile.NewService(store, nil, slog.Default())
	router := newRouter(service)

	first := authenticated(httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"headline":"Backend engineer"}`)), ownerAlice)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, first)
	require.Equal(t, http.StatusOK, recorder.Code)

	second := authenticated(httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"bio":"Ship it"}`)), ownerAlice)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, second)
	require.Equal(t, http.StatusOK, recorder.Code)

	record, err := service.GetProfile(context.Background(), ownerAlice)
	require.NoError(t, err)
	assert.Equal(t, "Ship it", pointer.Val(record.Bio))
	assert.Equal(t, "Backend engineer", pointer.Val(record.Headline))
	assert.Equal(t, profile.DefaultHandle(ownerAlice), record.Handle)
}

func TestPatchProfile_OmittedVisibilityStaysOn(t *testing.T) {
	store := newMemStore()
	service := profile.NewService(store, nil, slog.Default())
	router := newRouter(service)

	body := `{"bio":"Only the bio","show_blog":false}`
	request := authenticated(httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body)), ownerAlice)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	record, err := service.GetProfile(context.Background(), ownerAlice)
	require.NoError(t, err)
	assert.False(t, record.ShowBlog)
	assert.True(t, record.ShowProjects)
	assert.True(t, record.ShowExperience)
	assert.True(t, record.ShowContacts)
}
