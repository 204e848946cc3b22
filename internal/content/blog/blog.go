package blog

import (
	"time"

	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/database/schema"
)

// BlogPost is a written article. Hard-deleted; addressed publicly by slug.
type BlogPost struct {
	engine.Base
	Title       string     `db:"title" json:"title"`
	Slug        string     `db:"slug" json:"slug"`
	Excerpt     *string    `db:"excerpt" json:"excerpt"`
	Content     string     `db:"content" json:"content"`
	CoverURL    *string    `db:"cover_url" json:"cover_url"`
	Tags        []string   `db:"tags" json:"tags"`
	Published   bool       `db:"published" json:"published"`
	PublishedAt *time.Time `db:"published_at" json:"published_at"`
}

// Filter holds the parameters for a paginated blog post search.
type Filter struct {
	Published *bool
}

// Global field names for validation
const (
	FieldTitle    = "title"
	FieldSlug     = "slug"
	FieldExcerpt  = "excerpt"
	FieldContent  = "content"
	FieldCoverURL = "cover_url"
	FieldTags     = "tags"
)

// Definition binds the BlogPost type to its table for the shared store.
var Definition = engine.Config[BlogPost]{
	Table:    schema.ContentBlogPost.Table,
	Resource: "Blog post",
	Columns: []string{
		schema.ContentBlogPost.Title,
		schema.ContentBlogPost.Slug,
		schema.ContentBlogPost.Excerpt,
		schema.ContentBlogPost.Content,
		schema.ContentBlogPost.CoverURL,
		schema.ContentBlogPost.Tags,
		schema.ContentBlogPost.Published,
		schema.ContentBlogPost.PublishedAt,
	},
	Args: func(p *BlogPost) []any {
		return []any{p.Title, p.Slug, p.Excerpt, p.Content, p.CoverURL, p.Tags, p.Published, p.PublishedAt}
	},
	Delete:      engine.HardDelete,
	DefaultSort: "created_at DESC",
}
