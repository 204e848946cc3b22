package schema

// ContentCompanyTable represents the 'content.company' table
type ContentCompanyTable struct {
	Table      string
	ID         string
	OwnerID    string
	Name       string
	LogoURL    string
	WebsiteURL string
	Summary    string
	CreatedAt  string
	UpdatedAt  string
}

// ContentCompany is the schema definition for content.company
var ContentCompany = ContentCompanyTable{
	Table:      "content.company",
	ID:         "id",
	OwnerID:    "owner_id",
	Name:       "name",
	LogoURL:    "logo_url",
	WebsiteURL: "website_url",
	Summary:    "summary",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}

func (t ContentCompanyTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.Name, t.LogoURL, t.WebsiteURL, t.Summary, t.CreatedAt, t.UpdatedAt,
	}
}
