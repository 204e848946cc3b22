package schema

// ContentEducationTable represents the 'content.education' table
type ContentEducationTable struct {
	Table     string
	ID        string
	OwnerID   string
	School    string
	Degree    string
	Field     string
	StartDate string
	EndDate   string
	Summary   string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// ContentEducation is the schema definition for content.education
var ContentEducation = ContentEducationTable{
	Table:     "content.education",
	ID:        "id",
	OwnerID:   "owner_id",
	School:    "school",
	Degree:    "degree",
	Field:     "field",
	StartDate: "start_date",
	EndDate:   "end_date",
	Summary:   "summary",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
	DeletedAt: "deleted_at",
}

func (t ContentEducationTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.School, t.Degree, t.Field, t.StartDate, t.EndDate,
		t.Summary, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
