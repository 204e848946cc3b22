package testimonial

import (
	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/database/schema"
)

// Testimonial is a quote from a colleague or client. Hard-deleted and
// manually orderable.
type Testimonial struct {
	engine.Base
	AuthorName    string  `db:"author_name" json:"author_name"`
	AuthorTitle   *string `db:"author_title" json:"author_title"`
	AuthorCompany *string `db:"author_company" json:"author_company"`
	AvatarURL     *string `db:"avatar_url" json:"avatar_url"`
	Quote         string  `db:"quote" json:"quote"`
	Rating        *int    `db:"rating" json:"rating"`
	SortOrder     int     `db:"sort_order" json:"sort_order"`
}

// Global field names for validation
const (
	FieldAuthorName    = "author_name"
	FieldAuthorTitle   = "author_title"
	FieldAuthorCompany = "author_company"
	FieldAvatarURL     = "avatar_url"
	FieldQuote         = "quote"
	FieldRating        = "rating"
)

// Definition binds the Testimonial type to its table for the shared store.
var Definition = engine.Config[Testimonial]{
	Table:    schema.ContentTestimonial.Table,
	Resource: "Testimonial",
	Columns: []string{
		schema.ContentTestimonial.AuthorName,
		schema.ContentTestimonial.AuthorTitle,
		schema.ContentTestimonial.AuthorCompany,
		schema.ContentTestimonial.AvatarURL,
		schema.ContentTestimonial.Quote,
		schema.ContentTestimonial.Rating,
	},
	Args: func(t *Testimonial) []any {
		return []any{t.AuthorName, t.AuthorTitle, t.AuthorCompany, t.AvatarURL, t.Quote, t.Rating}
	},
	Orderable: true,
	Delete:    engine.HardDelete,
}
