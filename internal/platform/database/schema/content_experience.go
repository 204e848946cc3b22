package schema

// ContentExperienceTable represents the 'content.experience' table
type ContentExperienceTable struct {
	Table     string
	ID        string
	OwnerID   string
	Title     string
	Company   string
	CompanyID string
	Location  string
	StartDate string
	EndDate   string
	Current   string
	Summary   string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// ContentExperience is the schema definition for content.experience
var ContentExperience = ContentExperienceTable{
	Table:     "content.experience",
	ID:        "id",
	OwnerID:   "owner_id",
	Title:     "title",
	Company:   "company",
	CompanyID: "company_id",
	Location:  "location",
	StartDate: "start_date",
	EndDate:   "end_date",
	Current:   "current",
	Summary:   "summary",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
	DeletedAt: "deleted_at",
}

func (t ContentExperienceTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.Title, t.Company, t.CompanyID, t.Location,
		t.StartDate, t.EndDate, t.Current, t.Summary, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
