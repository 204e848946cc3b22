package schema

// ContentTestimonialTable represents the 'content.testimonial' table
type ContentTestimonialTable struct {
	Table         string
	ID            string
	OwnerID       string
	AuthorName    string
	AuthorTitle   string
	AuthorCompany string
	AvatarURL     string
	Quote         string
	Rating        string
	SortOrder     string
	CreatedAt     string
	UpdatedAt     string
}

// ContentTestimonial is the schema definition for content.testimonial
var ContentTestimonial = ContentTestimonialTable{
	Table:         "content.testimonial",
	ID:            "id",
	OwnerID:       "owner_id",
	AuthorName:    "author_name",
	AuthorTitle:   "author_title",
	AuthorCompany: "author_company",
	AvatarURL:     "avatar_url",
	Quote:         "quote",
	Rating:        "rating",
	SortOrder:     "sort_order",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

func (t ContentTestimonialTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.AuthorName, t.AuthorTitle, t.AuthorCompany,
		t.AvatarURL, t.Quote, t.Rating, t.SortOrder, t.CreatedAt, t.UpdatedAt,
	}
}
