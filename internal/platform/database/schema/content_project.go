package schema

// ContentProjectTable represents the 'content.project' table
type ContentProjectTable struct {
	Table        string
	ID           string
	OwnerID      string
	Title        string
	Summary      string
	Description  string
	ImageURL     string
	DemoURL      string
	RepoURL      string
	Technologies string
	Featured     string
	SortOrder    string
	CreatedAt    string
	UpdatedAt    string
	DeletedAt    string
}

// ContentProject is the schema definition for content.project
var ContentProject = ContentProjectTable{
	Table:        "content.project",
	ID:           "id",
	OwnerID:      "owner_id",
	Title:        "title",
	Summary:      "summary",
	Description:  "description",
	ImageURL:     "image_url",
	DemoURL:      "demo_url",
	RepoURL:      "repo_url",
	Technologies: "technologies",
	Featured:     "featured",
	SortOrder:    "sort_order",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
	DeletedAt:    "deleted_at",
}

func (t ContentProjectTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.Title, t.Summary, t.Description, t.ImageURL, t.DemoURL,
		t.RepoURL, t.Technologies, t.Featured, t.SortOrder, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
