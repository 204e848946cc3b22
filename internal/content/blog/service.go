package blog

import (
	"context"
	"log/slog"
	"time"

	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/apperr"
	"github.com/foliumhq/folium/internal/platform/database/schema"
	"github.com/foliumhq/folium/internal/platform/validate"
	"github.com/foliumhq/folium/pkg/slug"
)

type Service struct {
	store  engine.Store[BlogPost]
	logger *slog.Logger
}

func NewService(store engine.Store[BlogPost], logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

func (service *Service) ListPosts(ctx context.Context, ownerID string, filter Filter, limit, offset int) ([]*BlogPost, int, error) {
	opts := engine.ListOptions{
		Limit:  limit,
		Offset: offset,
	}
	if filter.Published != nil {
		opts.Filters = append(opts.Filters, engine.Filter{Column: schema.ContentBlogPost.Published, Value: *filter.Published})
	}

	return service.store.List(ctx, ownerID, opts)
}

func (service *Service) GetPost(ctx context.Context, ownerID, id string) (*BlogPost, error) {
	return service.store.Get(ctx, ownerID, id)
}

// GetPublishedBySlug serves the public read path. Unpublished posts are
// indistinguishable from absent ones.
func (service *Service) GetPublishedBySlug(ctx context.Context, slugValue string) (*BlogPost, error) {
	post, err := service.store.GetBy(ctx, schema.ContentBlogPost.Slug, slugValue)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, apperr.NotFound("Blog post")
	}
	return post, nil
}

func (service *Service) CreatePost(ctx context.Context, ownerID string, input *BlogPost) error {
	if err := validatePost(input); err != nil {
		return err
	}

	if input.Slug != "" {
		if err := service.claimSlug(ctx, input.Slug, ""); err != nil {
			return err
		}
	} else {
		resolved, err := service.deriveSlug(ctx, input.Title, "")
		if err != nil {
			return err
		}
		input.Slug = resolved
	}

	if input.Published && input.PublishedAt == nil {
		now := time.Now()
		input.PublishedAt = &now
	}

	if err := service.store.Create(ctx, ownerID, input); err != nil {
		return err
	}

	service.logger.Info("blog_post_created",
		slog.String("owner_id", ownerID),
		slog.String("post_id", input.ID),
		slog.String("slug", input.Slug),
	)
	return nil
}

func (service *Service) UpdatePost(ctx context.Context, ownerID, id string, input *BlogPost) (*BlogPost, error) {
	existing, err := service.store.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := validatePost(input); err != nil {
		return nil, err
	}

	// An omitted slug follows the title: an unchanged title keeps the
	// published address, a renamed one re-derives it. A submitted slug is
	// an explicit claim and conflicts instead of being suffixed.
	switch {
	case input.Slug == "" && input.Title == existing.Title:
		input.Slug = existing.Slug
	case input.Slug == "":
		resolved, err := service.deriveSlug(ctx, input.Title, existing.ID)
		if err != nil {
			return nil, err
		}
		input.Slug = resolved
	case input.Slug != existing.Slug:
		if err := service.claimSlug(ctx, input.Slug, existing.ID); err != nil {
			return nil, err
		}
	}

	input.PublishedAt = existing.PublishedAt
	if input.Published && input.PublishedAt == nil {
		now := time.Now()
		input.PublishedAt = &now
	}

	input.Base = existing.Base
	if err := service.store.Save(ctx, input); err != nil {
		return nil, err
	}

	service.logger.Info("blog_post_updated",
		slog.String("owner_id", ownerID),
		slog.String("post_id", id),
		slog.String("slug", input.Slug),
	)
	return input, nil
}

func (service *Service) DeletePost(ctx context.Context, ownerID, id string) error {
	if err := service.store.Remove(ctx, ownerID, id); err != nil {
		return err
	}

	service.logger.Warn("blog_post_deleted",
		slog.String("owner_id", ownerID),
		slog.String("post_id", id),
	)
	return nil
}

func (service *Service) BulkDeletePosts(ctx context.Context, ownerID string, ids []string) (engine.BulkResult, error) {
	result, err := service.store.BulkRemove(ctx, ownerID, ids)
	if err != nil {
		return engine.BulkResult{}, err
	}

	service.logger.Warn("blog_posts_bulk_deleted",
		slog.String("owner_id", ownerID),
		slog.Int("deleted", result.DeletedCount),
		slog.Int("failed", len(result.FailedIDs)),
	)
	return result, nil
}

// deriveSlug turns the title into a slug and probes -2, -3, ... suffixes
// until it is globally free. Slugs are unique across all owners because the
// public URL space is flat.
func (service *Service) deriveSlug(ctx context.Context, title, excludeID string) (string, error) {
	candidate := slug.From(title)
	if candidate == "" {
		return "", validate.RequiredError(FieldSlug, "Cannot derive a slug from this title")
	}

	return slug.Unique(candidate, func(probe string) (bool, error) {
		return service.store.ExistsBy(ctx, schema.ContentBlogPost.Slug, probe, excludeID)
	})
}

// claimSlug reserves an explicitly submitted slug. Only derived slugs get
// disambiguating suffixes; a collision here is the author's to resolve.
func (service *Service) claimSlug(ctx context.Context, slugValue, excludeID string) error {
	taken, err := service.store.ExistsBy(ctx, schema.ContentBlogPost.Slug, slugValue, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("This slug is already taken")
	}
	return nil
}

func validatePost(input *BlogPost) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200)
	validator.Required(FieldContent, input.Content)

	if input.Slug != "" {
		validator.Slug(FieldSlug, input.Slug).MaxLen(FieldSlug, input.Slug, 200)
	}
	if input.Excerpt != nil {
		validator.MaxLen(FieldExcerpt, *input.Excerpt, 500)
	}
	if input.CoverURL != nil {
		validator.URL(FieldCoverURL, *input.CoverURL)
	}
	for _, tag := range input.Tags {
		validator.MaxLen(FieldTags, tag, 50)
	}

	return validator.Err()
}
