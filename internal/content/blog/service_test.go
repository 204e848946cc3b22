package blog_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliumhq/folium/internal/content/blog"
	"github.com/foliumhq/folium/internal/content/engine/enginetest"
	"github.com/foliumhq/folium/internal/platform/apperr"
)

const owner = "11111111-1111-1111-1111-111111111111"

func newService() (*blog.Service, *enginetest.Store[blog.BlogPost, *blog.BlogPost]) {
	store := enginetest.New[blog.BlogPost, *blog.BlogPost]("Blog post", false, false)
	return blog.NewService(store, slog.Default()), store
}

func TestCreatePost_DerivesSlugFromTitle(t *testing.T) {
	service, _ := newService()

	input := blog.BlogPost{Title: "Shipping Folium v1.0, Finally!", Content: "body"}
	require.NoError(t, service.CreatePost(context.Background(), owner, &input))

	assert.Equal(t, "shipping-folium-v1-0-finally", input.Slug)
}

func TestCreatePost_SlugCollisionProbesSuffixes(t *testing.T) {
	service, store := newService()

	taken := map[string]bool{"hello-world": true, "hello-world-2": true}
	store.OnExists(func(column string, value any, excludeID string) bool {
		slugValue, _ := value.(string)
		return taken[slugValue]
	})

	input := blog.BlogPost{Title: "Hello World", Content: "body"}
	require.NoError(t, service.CreatePost(context.Background(), owner, &input))

	assert.Equal(t, "hello-world-3", input.Slug)
}

func TestCreatePost_RejectsUnsluggableTitle(t *testing.T) {
	service, _ := newService()

	input := blog.BlogPost{Title: "!!!", Content: "body"}
	err := service.CreatePost(context.Background(), owner, &input)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
}

func TestCreatePost_PublishStampsPublishedAt(t *testing.T) {
	service, _ := newService()

	draft := blog.BlogPost{Title: "Draft", Content: "body"}
	require.NoError(t, service.CreatePost(context.Background(), owner, &draft))
	assert.Nil(t, draft.PublishedAt)

	published := blog.BlogPost{Title: "Live", Content: "body", Published: true}
	require.NoError(t, service.CreatePost(context.Background(), owner, &published))
	require.NotNil(t, published.PublishedAt)
}

func TestCreatePost_ExplicitSlugCollisionConflicts(t *testing.T) {
	service, store := newService()

	store.OnExists(func(column string, value any, excludeID string) bool {
		slugValue, _ := value.(string)
		return slugValue == "taken-slug"
	})

	input := blog.BlogPost{Title: "Whatever", Content: "body", Slug: "taken-slug"}
	err := service.CreatePost(context.Background(), owner, &input)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeConflict))
}

func TestUpdatePost_ExplicitSlugCollisionConflicts(t *testing.T) {
	service, store := newService()

	ctx := context.Background()
	post := blog.BlogPost{Title: "Mine", Content: "body"}
	require.NoError(t, service.CreatePost(ctx, owner, &post))

	store.OnExists(func(column string, value any, excludeID string) bool {
		slugValue, _ := value.(string)
		return slugValue == "someone-elses"
	})

	_, err := service.UpdatePost(ctx, owner, post.ID, &blog.BlogPost{Title: "Mine", Content: "body", Slug: "someone-elses"})
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeConflict))
}

func TestUpdatePost_TitleChangeRederivesSlug(t *testing.T) {
	service, _ := newService()

	ctx := context.Background()
	post := blog.BlogPost{Title: "Original Title", Content: "body"}
	require.NoError(t, service.CreatePost(ctx, owner, &post))
	require.Equal(t, "original-title", post.Slug)

	updated, err := service.UpdatePost(ctx, owner, post.ID, &blog.BlogPost{Title: "Renamed Title", Content: "body"})
	require.NoError(t, err)
	assert.Equal(t, "renamed-title", updated.Slug)
}

func TestUpdatePost_SameTitleKeepsSlug(t *testing.T) {
	service, _ := newService()

	ctx := context.Background()
	post := blog.BlogPost{Title: "Original Title", Content: "body"}
	require.NoError(t, service.CreatePost(ctx, owner, &post))

	updated, err := service.UpdatePost(ctx, owner, post.ID, &blog.BlogPost{Title: "Original Title", Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "original-title", updated.Slug)
}

func TestUpdatePost_PublishedAtSetOnce(t *testing.T) {
	service, _ := newService()

	ctx := context.Background()
	post := blog.BlogPost{Title: "Post", Content: "body", Published: true}
	require.NoError(t, service.CreatePost(ctx, owner, &post))
	firstStamp := *post.PublishedAt

	updated, err := service.UpdatePost(ctx, owner, post.ID, &blog.BlogPost{Title: "Post", Content: "edited", Published: true})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	assert.Equal(t, firstStamp, *updated.PublishedAt)
}

func TestGetPublishedBySlug(t *testing.T) {
	service, store := newService()

	ctx := context.Background()
	live := blog.BlogPost{Title: "Live", Content: "body", Published: true}
	draft := blog.BlogPost{Title: "Draft", Content: "body"}
	require.NoError(t, service.CreatePost(ctx, owner, &live))
	require.NoError(t, service.CreatePost(ctx, owner, &draft))

	posts := map[string]*blog.BlogPost{live.Slug: &live, draft.Slug: &draft}
	store.OnGetBy(func(column string, value any) *blog.BlogPost {
		slugValue, _ := value.(string)
		return posts[slugValue]
	})

	found, err := service.GetPublishedBySlug(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, live.ID, found.ID)

	// A draft is NOT_FOUND on the public path, not FORBIDDEN.
	_, err = service.GetPublishedBySlug(ctx, "draft")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))

	_, err = service.GetPublishedBySlug(ctx, "missing")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}
