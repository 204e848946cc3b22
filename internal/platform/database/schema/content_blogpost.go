package schema

// ContentBlogPostTable represents the 'content.blog_post' table
type ContentBlogPostTable struct {
	Table       string
	ID          string
	OwnerID     string
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	CoverURL    string
	Tags        string
	Published   string
	PublishedAt string
	CreatedAt   string
	UpdatedAt   string
}

// ContentBlogPost is the schema definition for content.blog_post
var ContentBlogPost = ContentBlogPostTable{
	Table:       "content.blog_post",
	ID:          "id",
	OwnerID:     "owner_id",
	Title:       "title",
	Slug:        "slug",
	Excerpt:     "excerpt",
	Content:     "content",
	CoverURL:    "cover_url",
	Tags:        "tags",
	Published:   "published",
	PublishedAt: "published_at",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t ContentBlogPostTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.Title, t.Slug, t.Excerpt, t.Content, t.CoverURL,
		t.Tags, t.Published, t.PublishedAt, t.CreatedAt, t.UpdatedAt,
	}
}
