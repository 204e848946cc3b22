package blog_test

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

	"github.com/foliumhq/folium/internal/content/blog"
	"github.com/foliumhq/folium/internal/content/engine/enginetest"
	"github.com/foliumhq/folium/internal/platform/ctxutil"
	"github.com/foliumhq/folium/internal/platform/sec"
)

func TestPatchPost_PartialBodyFollowsTitle(t *testing.T) {
	store := enginetest.New[blog.BlogPost, *blog.BlogPost]("Blog post", false, false)
	service := blog.NewService(store, slog.Default())

	router := chi.NewRouter()
	blog.NewHandler(service).RegisterRoutes(router)

	ctx := context.Background()
	post := blog.BlogPost{Title: "Original Title", Content: "body"}
	require.NoError(t, service.CreatePost(ctx, owner, &post))
	require.Equal(t, "original-title", post.Slug)

	request := httptest.NewRequest(http.MethodPatch, "/"+post.ID, strings.NewReader(`{"title":"Brand New Title"}`))
	request = request.WithContext(ctxutil.WithOwner(request.Context(), &sec.AuthClaims{OwnerID: owner}))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	record, err := service.GetPost(ctx, owner, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brand New Title", record.Title)
	assert.Equal(t, "brand-new-title", record.Slug)
	assert.Equal(t, "body", record.Content)
}
