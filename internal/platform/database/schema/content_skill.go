package schema

// ContentSkillTable represents the 'content.skill' table
type ContentSkillTable struct {
	Table     string
	ID        string
	OwnerID   string
	Name      string
	Category  string
	Level     string
	SortOrder string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// ContentSkill is the schema definition for content.skill
var ContentSkill = ContentSkillTable{
	Table:     "content.skill",
	ID:        "id",
	OwnerID:   "owner_id",
	Name:      "name",
	Category:  "category",
	Level:     "level",
	SortOrder: "sort_order",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
	DeletedAt: "deleted_at",
}

func (t ContentSkillTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.Name, t.Category, t.Level, t.SortOrder,
		t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
